package models

import "strings"

type Config struct {
	Debug bool `yaml:"debug" envconfig:"DNA_INSIGHT_DEBUG" default:"false"`
	Api   struct {
		Url                   string `yaml:"url" envconfig:"DNA_INSIGHT_PUBLIC_URL"`
		Port                  string `yaml:"port" envconfig:"DNA_INSIGHT_API_INTERNAL_PORT" default:"5000"`
		UploadPath            string `yaml:"uploadPath" envconfig:"DNA_INSIGHT_API_UPLOAD_PATH"`
		MaxUploadBytes        int64  `yaml:"maxUploadBytes" envconfig:"DNA_INSIGHT_API_MAX_UPLOAD_BYTES" default:"104857600"`
		UploadRetentionHours  int    `yaml:"uploadRetentionHours" envconfig:"DNA_INSIGHT_API_UPLOAD_RETENTION_HOURS" default:"24"`
		DefaultSimulations    int    `yaml:"defaultSimulations" envconfig:"DNA_INSIGHT_API_DEFAULT_SIMULATIONS" default:"64"`
		SimulationConcurrency int    `yaml:"simulationConcurrency" envconfig:"DNA_INSIGHT_API_SIMULATION_CONCURRENCY" default:"4"`
		// "union" or "first-parent"
		OffspringTemplate string `yaml:"offspringTemplate" envconfig:"DNA_INSIGHT_API_OFFSPRING_TEMPLATE" default:"union"`
	} `yaml:"api"`
	Reference struct {
		CoefficientPathsCommaSep string `yaml:"coefficientPaths" envconfig:"DNA_INSIGHT_REFERENCE_COEFFICIENT_PATHS" default:"nih/gwas_50k.csv,gwas_50k.csv,backend/nih/gwas_50k.csv"`
		PathogenicPathsCommaSep  string `yaml:"pathogenicPaths" envconfig:"DNA_INSIGHT_REFERENCE_PATHOGENIC_PATHS" default:"nih/clinvar.gz,clinvar.gz,backend/nih/clinvar.gz,backend/clinvar.gz"`
	} `yaml:"reference"`
	Elasticsearch struct {
		Url          string `yaml:"url" envconfig:"DNA_INSIGHT_ES_URL"`
		Username     string `yaml:"username" envconfig:"DNA_INSIGHT_ES_USERNAME"`
		Password     string `yaml:"password" envconfig:"DNA_INSIGHT_ES_PASSWORD"`
		ReportsIndex string `yaml:"reportsIndex" envconfig:"DNA_INSIGHT_ES_REPORTS_INDEX" default:"dna-insight-reports"`
	} `yaml:"elasticsearch"`
	Sanitation struct {
		Enabled bool `yaml:"enabled" envconfig:"DNA_INSIGHT_SANITATION_ENABLED" default:"true"`
		// time of day, UTC, gocron "HH:MM"
		At string `yaml:"at" envconfig:"DNA_INSIGHT_SANITATION_AT" default:"04:00"`
	} `yaml:"sanitation"`
}

func (c *Config) CoefficientPaths() []string {
	return splitCommaSep(c.Reference.CoefficientPathsCommaSep)
}

func (c *Config) PathogenicPaths() []string {
	return splitCommaSep(c.Reference.PathogenicPathsCommaSep)
}

// ReportsEnabled reports whether a report store is configured.
func (c *Config) ReportsEnabled() bool {
	return c.Elasticsearch.Url != ""
}

func splitCommaSep(text string) []string {
	var out []string
	for _, p := range strings.Split(text, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
