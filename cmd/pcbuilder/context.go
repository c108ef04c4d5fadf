package main

import (
	"strings"
	"sync"

	"pcbuilder/pkg/client"
)

type commandContext struct {
	configFlag *string
	apiURLFlag *string
	jsonFlag   *bool

	once      sync.Once
	config    *cliConfig
	client    *client.Client
	configErr error
}

func newCommandContext(configFlag, apiURLFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, apiURLFlag: apiURLFlag, jsonFlag: jsonFlag}
}

func (c *commandContext) ensureClient() (*client.Client, error) {
	c.once.Do(func() {
		cfg, err := loadCLIConfig(*c.configFlag)
		if err != nil {
			c.configErr = err
			return
		}
		if url := strings.TrimSpace(*c.apiURLFlag); url != "" {
			cfg.APIURL = url
		}
		c.config = cfg

		api, err := client.New(cfg.APIURL, client.NewFileStore(cfg.SessionFile))
		if err != nil {
			c.configErr = err
			return
		}
		c.client = api
	})
	return c.client, c.configErr
}

func (c *commandContext) withClient(fn func(*client.Client) error) error {
	api, err := c.ensureClient()
	if err != nil {
		return err
	}
	return fn(api)
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}
