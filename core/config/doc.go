// Package config provides configuration management for the Line Checker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Storage: S3/MinIO credentials and bucket settings for the bucket batch mode
//   - Log: Logging level and format
//   - Lines: batch worker count, bucket input and output prefixes, document extension
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
