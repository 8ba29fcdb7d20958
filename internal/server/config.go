package server

type HttpConfig struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string `conf:"host"`

	// Port is the TCP port to listen on.
	Port int `conf:"port"`

	// H2c enables the HTTP/2 cleartext upgrade.
	H2c bool `conf:"h2c"`
}
