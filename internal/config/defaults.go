package config

const (
	defaultRawDataDir = "~/chronicle/raw"
	defaultOutputFile = "~/chronicle/cleaned/app_usage_cleaned.csv"
	defaultLogDir     = "~/.local/share/chronicle/logs"
	defaultDataDir    = "~/.local/share/chronicle"

	defaultTimezone = "America/New_York"

	defaultGapHours           = 12
	defaultMaxSessionSeconds  = 21600
	defaultDenylistMaxSeconds = 600

	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 30
)

// defaultDenylist lists app identifiers whose reported durations are known
// to be unreliable. Mostly launchers and lock/home screens that report
// phantom foreground time.
var defaultDenylist = []string{
	"com.android.launcher3",
	"com.android.systemui",
	"com.google.android.apps.nexuslauncher",
	"com.huawei.android.launcher",
	"com.lge.launcher3",
	"com.miui.home",
	"com.oneplus.launcher",
	"com.samsung.android.app.aodservice",
	"com.sec.android.app.launcher",
	"com.motorola.launcher3",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	denylist := make([]string, len(defaultDenylist))
	copy(denylist, defaultDenylist)

	return Config{
		Paths: Paths{
			RawDataDir: defaultRawDataDir,
			OutputFile: defaultOutputFile,
			LogDir:     defaultLogDir,
			DataDir:    defaultDataDir,
		},
		Study: Study{
			Timezone: defaultTimezone,
		},
		Filters: Filters{
			GapHours:           defaultGapHours,
			MaxSessionSeconds:  defaultMaxSessionSeconds,
			DenylistMaxSeconds: defaultDenylistMaxSeconds,
			Denylist:           denylist,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
	}
}
