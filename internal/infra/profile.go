package infra

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

func envProfile() string {
	return lo.CoalesceOrEmpty(os.Getenv("AWS_PROFILE"), os.Getenv("AWS_DEFAULT_PROFILE"))
}

func awsConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".aws", "config")
}

// parseAWSConfigProfiles maps profile names to account IDs found in the shared config file.
// sso_account_id wins over the account embedded in role_arn. Returns nil when the file is unreadable.
func parseAWSConfigProfiles() map[string]string {
	path := awsConfigPath()
	if path == "" {
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil
	}

	profiles := make(map[string]string)

	for _, section := range file.Sections() {
		name, ok := profileName(section.Name())
		if !ok {
			continue
		}

		if account := section.Key("sso_account_id").String(); account != "" {
			profiles[name] = account

			continue
		}

		if account := accountFromARN(section.Key("role_arn").String()); account != "" {
			profiles[name] = account
		}
	}

	return profiles
}

func profileName(section string) (string, bool) {
	switch {
	case strings.EqualFold(section, ini.DefaultSection), strings.EqualFold(section, "default"):
		return "default", true
	case strings.HasPrefix(section, "profile "):
		return strings.TrimSpace(strings.TrimPrefix(section, "profile ")), true
	default:
		return "", false
	}
}

// accountFromARN extracts the account field of arn:partition:service:region:account:resource.
func accountFromARN(arn string) string {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) < 6 || parts[0] != "arn" {
		return ""
	}

	return parts[4]
}

// findProfileByAccountID returns the profile configured for accountID.
// The environment profile wins when it matches; otherwise the alphabetically first match.
func findProfileByAccountID(accountID string) string {
	profiles := parseAWSConfigProfiles()
	if len(profiles) == 0 {
		return ""
	}

	if current := envProfile(); current != "" && profiles[current] == accountID {
		return current
	}

	names := lo.Keys(lo.PickByValues(profiles, []string{accountID}))
	if len(names) == 0 {
		return ""
	}

	slices.Sort(names)

	return names[0]
}
