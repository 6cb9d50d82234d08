package config

import "sort"

func orbitPreset(a, e, q, speed float64, frame string) *Config {
	c := DefaultConfig()
	c.Orbit.SemiMajorAxis = a
	c.Orbit.Eccentricity = e
	c.Orbit.MassRatio = q
	c.Orbit.Speed = speed
	c.Orbit.Frame = frame
	return c
}

func rochePreset(m1, m2, a, omega float64) *Config {
	c := DefaultConfig()
	c.Roche.M1, c.Roche.M2 = m1, m2
	c.Roche.Separation, c.Roche.Omega = a, omega
	return c
}

func diskPreset(temp, mu, mass, radius float64) *Config {
	c := DefaultConfig()
	c.Disk.Temperature = temp
	c.Disk.MeanMolecularWeight = mu
	c.Disk.Mass = mass
	c.Disk.Radius = radius
	return c
}

func spinPreset(lock, frame string) *Config {
	c := DefaultConfig()
	c.Spin.Lock = lock
	c.Spin.Frame = frame
	return c
}

var Presets = map[string]map[string]*Config{
	"orbit": {
		"circular":  orbitPreset(5, 0, 1, 1, "inertial"),
		"eccentric": orbitPreset(5, 0.6, 1, 1, "inertial"),
		"unequal":   orbitPreset(5, 0.3, 0.2, 1, "inertial"),
		"heavy":     orbitPreset(5, 0.3, 5, 1, "inertial"),
		"rotating":  orbitPreset(5, 0.5, 0.5, 1, "corotating"),
		"wobble":    orbitPreset(5, 0.2, 1, 2, "observer"),
	},
	"roche": {
		"equal":  rochePreset(1, 1, 1, 1),
		"xrb":    rochePreset(1, 0.1, 1, 1),
		"algol":  rochePreset(1, 0.25, 1, 1),
		"static": rochePreset(1, 1, 1, 0),
	},
	"disk": {
		"default": diskPreset(1e7, 1, 100, 101),
		"hot":     diskPreset(1e8, 0.6, 10, 101),
		"cool":    diskPreset(1e5, 1, 100, 1001),
	},
	"spin": {
		"locked":     spinPreset("synchronous", "corotating"),
		"static":     spinPreset("static", "observer"),
		"retrograde": spinPreset("retrograde", "center-of-mass"),
	},
}

// GetPreset returns a copy of the named preset, or nil if either name is
// unknown.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names for model in sorted order.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Models lists the models that have presets.
func Models() []string {
	models := make([]string, 0, len(Presets))
	for m := range Presets {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}
