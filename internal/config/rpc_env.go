package config

import (
	"regexp"
	"strings"
)

// envVarRefPattern matches ${VAR_NAME} anywhere in a value
var envVarRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ReferencedVars returns the variable names referenced by ${VAR} placeholders, in order
// of first appearance.
func ReferencedVars(value string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range envVarRefPattern.FindAllStringSubmatch(value, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// ExpandEnvVars substitutes ${VAR} placeholders from vars. Placeholders whose variable is
// absent or empty are left in place and reported in missing.
func ExpandEnvVars(value string, vars map[string]string) (expanded string, missing []string) {
	expanded = envVarRefPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[2 : len(match)-1]
		if v := vars[name]; v != "" {
			return v
		}
		missing = append(missing, name)
		return match
	})
	return expanded, missing
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: fuji -> FUJI_RPC_URL, avax-fuji -> AVAX_FUJI_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}
