package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a                decryption service listen address [host]:[port]
//	-u                decryption service URL used by the client
//	-upload-path      upload endpoint path
//	-t                client request timeout (0 disables it)
//	-request-timeout  service request timeout (e.g. "30s", "1m")
//	-max-upload-size  service upload limit in bytes
//	-upload-dir       service archive directory
//	-download-dir     client download directory
//	-log-file         client log file
//	-log-level        log level
//	-c/-config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress, uploadPath string
	var adapterTimeout, serverTimeout time.Duration
	var maxUploadSize int64
	var uploadDir, downloadDir string
	var logFile, logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("pdf-decrypter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "u", "", "Decryption service URL")
	fs.StringVar(&uploadPath, "upload-path", "", "Upload endpoint path")
	fs.DurationVar(&adapterTimeout, "t", 0, "Client request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&serverTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum upload size in bytes")
	fs.StringVar(&uploadDir, "upload-dir", "", "Directory for archived uploads")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded documents")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Storage: Storage{
			Files: Files{
				UploadDir:   uploadDir,
				DownloadDir: downloadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			UploadPath:     uploadPath,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
