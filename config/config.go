package config

import (
	"os"
	"strings"
	"time"

	"github.com/foomo/siteprobe/vo"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL  = "https://hiperdex.com"
	DefaultAjaxPath = "/wp-admin/admin-ajax.php"
	DefaultAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout  = 15 * time.Second
	DefaultSample   = 5
)

// Client is shared by both tools
type Client struct {
	Agent   string        `yaml:"agent" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

type Config struct {
	Client       Client     `yaml:"client"`
	BaseURL      string     `yaml:"baseurl" validate:"required,url"`
	AjaxPath     string     `yaml:"ajaxpath" validate:"required,startswith=/"`
	Sample       int        `yaml:"sample" validate:"min=1"`
	IgnoreRobots bool       `yaml:"ignorerobots"`
	Payload      vo.Payload `yaml:"payload" validate:"required,min=1,dive"`
}

// DefaultPayload the load more request of the madara theme, without a nonce
func DefaultPayload() vo.Payload {
	return vo.Payload{
		{Name: "action", Value: "madara_load_more"},
		{Name: "page", Value: "1"},
		{Name: "template", Value: "madara-core/content/content-archive"},
		{Name: "vars[paged]", Value: "1"},
		{Name: "vars[posts_per_page]", Value: "20"},
		{Name: "vars[orderby]", Value: "meta_value_num"},
		{Name: "vars[post_type]", Value: "wp-manga"},
		{Name: "vars[meta_key]", Value: "_latest_update"},
	}
}

func Default() *Config {
	return &Config{
		Client: Client{
			Agent:   DefaultAgent,
			Timeout: DefaultTimeout,
		},
		BaseURL:  DefaultBaseURL,
		AjaxPath: DefaultAjaxPath,
		Sample:   DefaultSample,
		Payload:  DefaultPayload(),
	}
}

var validate = validator.New()

// Validate checks all struct rules
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Endpoint absolute url of the ajax endpoint
func (c *Config) Endpoint() string {
	return c.BaseURL + c.AjaxPath
}

// Homepage absolute url of the site root
func (c *Config) Homepage() string {
	return c.BaseURL + "/"
}

// Load overlays yaml on the defaults
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	conf.BaseURL = strings.TrimRight(conf.BaseURL, "/")
	errValidate := conf.Validate()
	if errValidate != nil {
		return nil, errValidate
	}
	return conf, nil
}

// Get reads and loads a yaml config file
func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}
