// Package config loads the launcher configuration.
//
// Values come from struct tag defaults, a .env file in the working directory when
// present, and environment variables. Nested keys map to upper case variables
// with underscores, e.g. launcher.default_port -> LAUNCHER_DEFAULT_PORT.
//
// # Configuration Structure
//
//   - Launcher: port variable, default port, application root, binary and flag
//   - Function: platform function declaration (image, secrets, warm containers, web port)
//   - Secrets: whether to inject a secret bundle from storage before launch
//   - Storage: S3/MinIO credentials and bucket
//   - Server: optional status server
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Launcher.Binary)
package config
