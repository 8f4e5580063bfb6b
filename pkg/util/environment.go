package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// IsEnabled reports whether an environment flag is set to YES, the same
// convention used for NEXTTRAIN_DEBUG
func IsEnabled(env map[string]string, name string) bool {
	return strings.EqualFold(env[name], "YES")
}
