package fire

import "mad-fire/internal/core"

// Parameters reports the current configuration for the HUD.
func (f *Fire) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", f.cfg.Width),
				core.IntParam("h", "Height", f.cfg.Height),
				core.Int64Param("seed", "Seed", f.cfg.Seed),
				core.StringParam("palette", "Palette", f.cfg.Palette),
				core.IntParam("tick", "Tick", f.tick),
			},
		},
		{
			Name: "Injection",
			Params: []core.Parameter{
				core.IntParam("spark_odds", "Spark odds 1/n", p.SparkOdds),
				core.FloatParam("spark_chance", "Spark chance", 1/float64(p.SparkOdds)),
				core.IntParam("spark_min", "Spark min", p.SparkMin),
				core.IntParam("spark_max", "Spark max", p.SparkMax),
				core.IntParam("pilot", "Pilot heat", p.Pilot),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				core.IntParam("workers", "Workers", p.Workers),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable while running. Grid
// dimensions are fixed for the life of the sim.
func (f *Fire) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "spark_odds", Label: "Spark odds", Step: 1, Min: 1, Max: 1024},
		{Key: "spark_min", Label: "Spark min", Step: 8, Min: 0, Max: core.MaxHeat},
		{Key: "spark_max", Label: "Spark max", Step: 8, Min: 0, Max: core.MaxHeat},
		{Key: "pilot", Label: "Pilot heat", Step: 1, Min: 0, Max: core.MaxHeat},
		{Key: "workers", Label: "Workers", Step: 1, Min: 1, Max: 64},
	}
}

// SetIntParameter updates a runtime-adjustable parameter, clamping value to
// the control's range. Spark min and max push each other to stay ordered.
func (f *Fire) SetIntParameter(key string, value int) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range f.ParameterControls() {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found {
		return false
	}
	value = max(ctrl.Min, min(ctrl.Max, value))

	p := &f.cfg.Params
	switch key {
	case "spark_odds":
		p.SparkOdds = value
	case "spark_min":
		p.SparkMin = value
		if p.SparkMax < value {
			p.SparkMax = value
		}
	case "spark_max":
		p.SparkMax = value
		if p.SparkMin > value {
			p.SparkMin = value
		}
	case "pilot":
		p.Pilot = value
	case "workers":
		p.Workers = value
	}
	return true
}
