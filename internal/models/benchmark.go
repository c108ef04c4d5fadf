package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ComponentType tags which hardware family a benchmark describes.
type ComponentType string

const (
	ComponentCPU    ComponentType = "CPU"
	ComponentGPU    ComponentType = "GPU"
	ComponentCooler ComponentType = "Cooler"
	ComponentRAM    ComponentType = "RAM"
	ComponentSSD    ComponentType = "SSD"
	ComponentHDD    ComponentType = "HDD"
)

// ComponentTypes lists every supported component type.
var ComponentTypes = []ComponentType{
	ComponentCPU, ComponentGPU, ComponentCooler, ComponentRAM, ComponentSSD, ComponentHDD,
}

// Valid reports whether t is one of the supported component types.
func (t ComponentType) Valid() bool {
	for _, known := range ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Scores is the flat metric bag as stored. Only the fields relevant to the
// benchmark's component type are populated.
type Scores struct {
	SingleCore       *float64 `json:"singleCore,omitempty"`
	MultiCore        *float64 `json:"multiCore,omitempty"`
	Gaming           *float64 `json:"gaming,omitempty"`
	Productivity     *float64 `json:"productivity,omitempty"`
	Thermals         *float64 `json:"thermals,omitempty"`
	Noise            *float64 `json:"noise,omitempty"`
	PowerConsumption *float64 `json:"powerConsumption,omitempty"`
	FPS1080p         *float64 `json:"fps1080p,omitempty" gorm:"column:fps1080p"`
	FPS1440p         *float64 `json:"fps1440p,omitempty" gorm:"column:fps1440p"`
	FPS4k            *float64 `json:"fps4k,omitempty" gorm:"column:fps4k"`
	Latency          *float64 `json:"latency,omitempty"`
	Bandwidth        *float64 `json:"bandwidth,omitempty"`
	ReadSpeed        *float64 `json:"readSpeed,omitempty"`
	WriteSpeed       *float64 `json:"writeSpeed,omitempty"`
	RandomRead       *float64 `json:"randomRead,omitempty"`
	RandomWrite      *float64 `json:"randomWrite,omitempty"`
}

// ScoreColumns maps the public metric names to their storage columns.
var ScoreColumns = map[string]string{
	"singleCore":       "score_single_core",
	"multiCore":        "score_multi_core",
	"gaming":           "score_gaming",
	"productivity":     "score_productivity",
	"thermals":         "score_thermals",
	"noise":            "score_noise",
	"powerConsumption": "score_power_consumption",
	"fps1080p":         "score_fps1080p",
	"fps1440p":         "score_fps1440p",
	"fps4k":            "score_fps4k",
	"latency":          "score_latency",
	"bandwidth":        "score_bandwidth",
	"readSpeed":        "score_read_speed",
	"writeSpeed":       "score_write_speed",
	"randomRead":       "score_random_read",
	"randomWrite":      "score_random_write",
}

// Benchmark describes the measured performance of one hardware component.
type Benchmark struct {
	ID             string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ComponentType  ComponentType     `json:"componentType" gorm:"index;type:varchar(16);not null"`
	Name           string            `json:"name" gorm:"index;type:varchar(255);not null"`
	Brand          string            `json:"brand" gorm:"index;type:varchar(100);not null"`
	Scores         Scores            `json:"scores" gorm:"embedded;embeddedPrefix:score_"`
	Year           int               `json:"year" gorm:"not null"`
	Price          float64           `json:"price" gorm:"not null"`
	AdditionalInfo datatypes.JSONMap `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Metrics is the typed view of a benchmark's scores. Each implementation
// carries exactly the metrics meaningful for its component type.
type Metrics interface {
	Kind() ComponentType
	flatten() Scores
}

// CPUMetrics holds processor scores.
type CPUMetrics struct {
	SingleCore   float64
	MultiCore    float64
	Gaming       float64
	Productivity float64
}

// GPUMetrics holds graphics card scores.
type GPUMetrics struct {
	FPS1080p         float64
	FPS1440p         float64
	FPS4k            float64
	PowerConsumption *float64
}

// CoolerMetrics holds CPU cooler scores.
type CoolerMetrics struct {
	Thermals float64
	Noise    float64
}

// RAMMetrics holds memory kit scores.
type RAMMetrics struct {
	Latency   float64
	Bandwidth float64
}

// StorageMetrics holds SSD and HDD scores. Type selects which of the two.
type StorageMetrics struct {
	Type        ComponentType
	ReadSpeed   float64
	WriteSpeed  float64
	RandomRead  float64
	RandomWrite float64
}

func (CPUMetrics) Kind() ComponentType    { return ComponentCPU }
func (GPUMetrics) Kind() ComponentType    { return ComponentGPU }
func (CoolerMetrics) Kind() ComponentType { return ComponentCooler }
func (RAMMetrics) Kind() ComponentType    { return ComponentRAM }

func (m StorageMetrics) Kind() ComponentType {
	if m.Type == ComponentHDD {
		return ComponentHDD
	}
	return ComponentSSD
}

func (m CPUMetrics) flatten() Scores {
	return Scores{
		SingleCore:   ptr(m.SingleCore),
		MultiCore:    ptr(m.MultiCore),
		Gaming:       ptr(m.Gaming),
		Productivity: ptr(m.Productivity),
	}
}

func (m GPUMetrics) flatten() Scores {
	return Scores{
		FPS1080p:         ptr(m.FPS1080p),
		FPS1440p:         ptr(m.FPS1440p),
		FPS4k:            ptr(m.FPS4k),
		PowerConsumption: m.PowerConsumption,
	}
}

func (m CoolerMetrics) flatten() Scores {
	return Scores{Thermals: ptr(m.Thermals), Noise: ptr(m.Noise)}
}

func (m RAMMetrics) flatten() Scores {
	return Scores{Latency: ptr(m.Latency), Bandwidth: ptr(m.Bandwidth)}
}

func (m StorageMetrics) flatten() Scores {
	return Scores{
		ReadSpeed:   ptr(m.ReadSpeed),
		WriteSpeed:  ptr(m.WriteSpeed),
		RandomRead:  ptr(m.RandomRead),
		RandomWrite: ptr(m.RandomWrite),
	}
}

// SetMetrics stores m as the benchmark's scores and aligns its component type.
func (b *Benchmark) SetMetrics(m Metrics) {
	b.ComponentType = m.Kind()
	b.Scores = m.flatten()
}

// Metrics decodes the stored score bag into the variant matching the
// benchmark's component type. Missing values decode as zero.
func (b *Benchmark) Metrics() (Metrics, error) {
	s := b.Scores
	switch b.ComponentType {
	case ComponentCPU:
		return CPUMetrics{
			SingleCore:   val(s.SingleCore),
			MultiCore:    val(s.MultiCore),
			Gaming:       val(s.Gaming),
			Productivity: val(s.Productivity),
		}, nil
	case ComponentGPU:
		return GPUMetrics{
			FPS1080p:         val(s.FPS1080p),
			FPS1440p:         val(s.FPS1440p),
			FPS4k:            val(s.FPS4k),
			PowerConsumption: s.PowerConsumption,
		}, nil
	case ComponentCooler:
		return CoolerMetrics{Thermals: val(s.Thermals), Noise: val(s.Noise)}, nil
	case ComponentRAM:
		return RAMMetrics{Latency: val(s.Latency), Bandwidth: val(s.Bandwidth)}, nil
	case ComponentSSD, ComponentHDD:
		return StorageMetrics{
			Type:        b.ComponentType,
			ReadSpeed:   val(s.ReadSpeed),
			WriteSpeed:  val(s.WriteSpeed),
			RandomRead:  val(s.RandomRead),
			RandomWrite: val(s.RandomWrite),
		}, nil
	default:
		return nil, fmt.Errorf("unknown component type %q", b.ComponentType)
	}
}

// MetricNames returns the metric keys meaningful for t, in display order.
func MetricNames(t ComponentType) []string {
	switch t {
	case ComponentCPU:
		return []string{"singleCore", "multiCore", "gaming", "productivity"}
	case ComponentGPU:
		return []string{"fps1080p", "fps1440p", "fps4k", "powerConsumption"}
	case ComponentCooler:
		return []string{"thermals", "noise"}
	case ComponentRAM:
		return []string{"latency", "bandwidth"}
	case ComponentSSD, ComponentHDD:
		return []string{"readSpeed", "writeSpeed", "randomRead", "randomWrite"}
	default:
		return nil
	}
}

// Value returns the named metric from the flat bag.
func (s Scores) Value(name string) (float64, bool) {
	var p *float64
	switch name {
	case "singleCore":
		p = s.SingleCore
	case "multiCore":
		p = s.MultiCore
	case "gaming":
		p = s.Gaming
	case "productivity":
		p = s.Productivity
	case "thermals":
		p = s.Thermals
	case "noise":
		p = s.Noise
	case "powerConsumption":
		p = s.PowerConsumption
	case "fps1080p":
		p = s.FPS1080p
	case "fps1440p":
		p = s.FPS1440p
	case "fps4k":
		p = s.FPS4k
	case "latency":
		p = s.Latency
	case "bandwidth":
		p = s.Bandwidth
	case "readSpeed":
		p = s.ReadSpeed
	case "writeSpeed":
		p = s.WriteSpeed
	case "randomRead":
		p = s.RandomRead
	case "randomWrite":
		p = s.RandomWrite
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

func ptr(v float64) *float64 { return &v }

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
