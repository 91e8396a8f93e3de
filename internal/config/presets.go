package config

var Presets = map[string]*Config{
	"demo": {
		K: 1.5, Y0: 100, T0: 0, TFinal: 1.0, H: 0.2, CurvePoints: 100,
	},
	"fine": {
		K: 1.5, Y0: 100, T0: 0, TFinal: 1.0, H: 0.01, CurvePoints: 200,
	},
	"coarse": {
		K: 1.5, Y0: 100, T0: 0, TFinal: 1.0, H: 0.5, CurvePoints: 100,
	},
	"decay": {
		K: -0.8, Y0: 100, T0: 0, TFinal: 5.0, H: 0.25, CurvePoints: 200,
	},
	"steep": {
		K: 5.0, Y0: 1, T0: 0, TFinal: 2.0, H: 0.1, CurvePoints: 200,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
