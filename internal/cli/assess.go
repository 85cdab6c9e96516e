package cli

import (
	"fmt"

	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/spf13/cobra"
)

type assessOptions struct {
	diameter          float64
	velocityKmS       float64
	density           float64
	material          string
	eccentricity      float64
	semiMajorAxis     float64
	inclination       float64
	populationDensity float64
	years             float64
	output            string
}

func newAssessCmd() *cobra.Command {
	opts := &assessOptions{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess impact risk for a single object",
		Long: `Assess runs the full risk model for one object. Only --diameter is required,
every other parameter falls back to the model defaults.

An explicit --density takes precedence over --material.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obs, err := opts.observation(cmd, risk.DefaultConstants())
			if err != nil {
				return err
			}

			assessment, err := risk.NewEngine(risk.DefaultConstants()).AssessRisk(obs)
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, assessment)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&opts.diameter, "diameter", "d", 0, "diameter in meters")
	flags.Float64VarP(&opts.velocityKmS, "velocity", "v", 0, "relative velocity in km/s")
	flags.Float64Var(&opts.density, "density", 0, "bulk density in kg/m3")
	flags.StringVarP(&opts.material, "material", "m", "", "composition preset: iron, rock or ice")
	flags.Float64Var(&opts.eccentricity, "eccentricity", 0, "orbital eccentricity")
	flags.Float64Var(&opts.semiMajorAxis, "semi-major-axis", 0, "semi-major axis in AU")
	flags.Float64Var(&opts.inclination, "inclination", 0, "orbital inclination in degrees")
	flags.Float64Var(&opts.populationDensity, "population-density", 0, "people per km2 near the impact site")
	flags.Float64Var(&opts.years, "years", 0, "years until the approach")
	flags.StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")
	_ = cmd.MarkFlagRequired("diameter")

	return cmd
}

// observation собирает наблюдение только из явно заданных флагов
func (o *assessOptions) observation(cmd *cobra.Command, c risk.Constants) (risk.Observation, error) {
	flags := cmd.Flags()
	set := func(name string, v float64) *float64 {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}

	obs := risk.Observation{
		DiameterM: o.diameter,
		Orbit: risk.OrbitalElements{
			Eccentricity:    set("eccentricity", o.eccentricity),
			SemiMajorAxisAU: set("semi-major-axis", o.semiMajorAxis),
			InclinationDeg:  set("inclination", o.inclination),
		},
		YearsToApproach:   set("years", o.years),
		PopulationDensity: set("population-density", o.populationDensity),
	}
	if flags.Changed("velocity") {
		velocity := o.velocityKmS * 1000
		obs.VelocityMS = &velocity
	}

	if o.material != "" {
		density, ok := c.MaterialDensity(risk.Material(o.material))
		if !ok {
			return risk.Observation{}, fmt.Errorf("unknown material %q, expected iron, rock or ice", o.material)
		}
		obs.DensityKgM3 = &density
	}
	if flags.Changed("density") {
		density := o.density
		obs.DensityKgM3 = &density
	}
	return obs, nil
}
