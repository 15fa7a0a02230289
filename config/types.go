package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gte=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"omitempty,dive,required"`
}

// RoutingConfig contains the routing parameters
type RoutingConfig struct {
	BusWaitTime int     `yaml:"busWaitTime" validate:"omitempty,gte=1,lte=1000"` // minutes
	BusVelocity float64 `yaml:"busVelocity" validate:"omitempty,gte=1,lte=1000"` // km/h
}

// RenderConfig contains map rendering parameters
type RenderConfig struct {
	Width             float64    `yaml:"width" validate:"gte=0,lte=100000"`
	Height            float64    `yaml:"height" validate:"gte=0,lte=100000"`
	Padding           float64    `yaml:"padding" validate:"gte=0"`
	LineWidth         float64    `yaml:"lineWidth" validate:"gte=0,lte=100000"`
	StopRadius        float64    `yaml:"stopRadius" validate:"gte=0,lte=100000"`
	BusLabelFontSize  int        `yaml:"busLabelFontSize" validate:"gte=0,lte=100000"`
	BusLabelOffset    [2]float64 `yaml:"busLabelOffset"`
	StopLabelFontSize int        `yaml:"stopLabelFontSize" validate:"gte=0,lte=100000"`
	StopLabelOffset   [2]float64 `yaml:"stopLabelOffset"`
	UnderlayerColor   string     `yaml:"underlayerColor"`
	UnderlayerWidth   float64    `yaml:"underlayerWidth" validate:"gte=0,lte=100000"`
	ColorPalette      []string   `yaml:"colorPalette" validate:"omitempty,dive,required"`
}

// InputConfig tells the server where to load the network from. Oneshot mode
// reads the network from its request document and leaves both paths empty.
type InputConfig struct {
	RequestsPath string `yaml:"requestsPath"`
	GTFSPath     string `yaml:"gtfsPath"`
	StrictStops  bool   `yaml:"strictStops"`
}

// CacheConfig contains route cache configuration
type CacheConfig struct {
	RouteCacheSize       int `yaml:"routeCacheSize" validate:"gte=0"`
	RouteCacheTTLSeconds int `yaml:"routeCacheTTLSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Routing RoutingConfig `yaml:"routing"`
	Render  RenderConfig  `yaml:"render"`
	Input   InputConfig   `yaml:"input"`
	Cache   CacheConfig   `yaml:"cache"`
}
