package config

import "os"

func IsDebug() bool {
	return os.Getenv("MEMBOT_DEBUG") == "1"
}
