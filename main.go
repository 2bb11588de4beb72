package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/odurisile/DNA-Insight/contexts"
	gam "github.com/odurisile/DNA-Insight/middleware"
	"github.com/odurisile/DNA-Insight/models"
	analysisMvc "github.com/odurisile/DNA-Insight/mvc/analysis"
	reportsMvc "github.com/odurisile/DNA-Insight/mvc/reports"
	serviceInfoMvc "github.com/odurisile/DNA-Insight/mvc/service-info"
	uploadsMvc "github.com/odurisile/DNA-Insight/mvc/uploads"
	esRepo "github.com/odurisile/DNA-Insight/repositories/elasticsearch"
	"github.com/odurisile/DNA-Insight/services"
	"github.com/odurisile/DNA-Insight/services/offspring"
	"github.com/odurisile/DNA-Insight/services/phenotype"
	"github.com/odurisile/DNA-Insight/services/reference"
	"github.com/odurisile/DNA-Insight/services/risk"
	"github.com/odurisile/DNA-Insight/services/sanitation"
	"github.com/odurisile/DNA-Insight/utils"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tUpload Directory Path : %s \n"+
		"\tMax Upload Bytes : %d\n"+
		"\tUpload Retention (hours) : %d\n"+
		"\tDefault Simulations : %d\n"+
		"\tSimulation Concurrency Level : %d\n"+
		"\tOffspring Template : %s\n\n"+

		"\tCoefficient Paths : %v\n"+
		"\tPathogenic Paths : %v\n\n"+

		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n"+
		"\tReports Index : %s\n\n"+

		"\tSanitation Enabled : %t (daily at %s UTC)\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.UploadPath,
		cfg.Api.MaxUploadBytes,
		cfg.Api.UploadRetentionHours,
		cfg.Api.DefaultSimulations,
		cfg.Api.SimulationConcurrency,
		cfg.Api.OffspringTemplate,
		cfg.CoefficientPaths(),
		cfg.PathogenicPaths(),
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Elasticsearch.ReportsIndex,
		cfg.Sanitation.Enabled, cfg.Sanitation.At,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Reference data, loaded once up front
	refs := reference.NewCache(cfg.CoefficientPaths(), cfg.PathogenicPaths())
	refs.Load()

	// Service Connections:
	// -- Elasticsearch (optional report store)
	var (
		reportStore contexts.ReportStore
		purger      sanitation.ReportPurger
	)
	if cfg.ReportsEnabled() {
		es, esErr := utils.CreateEsConnection(&cfg, nil)
		if esErr != nil {
			fmt.Println(esErr)
			os.Exit(2)
		}
		repo := esRepo.NewReportRepository(es, &cfg)
		if err := repo.EnsureIndex(context.Background()); err != nil {
			fmt.Printf("[%s] - WARNING: %s\n", time.Now(), err)
		}
		reportStore, purger = repo, repo
	}

	// Service Singletons
	iz := services.NewIngestionService(&cfg)
	riskEngine := risk.NewEngine(refs)
	simulator := offspring.NewSimulator(phenotype.Predictor{}, riskEngine,
		cfg.Api.SimulationConcurrency, offspring.ParseTemplate(cfg.Api.OffspringTemplate))
	sanitation.NewSanitationService(&cfg, purger)

	// Configure Server
	if cfg.Debug {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom Insight" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.InsightContext{
				Context:          c,
				Config:           &cfg,
				IngestionService: iz,
				RiskEngine:       riskEngine,
				Simulator:        simulator,
				Reports:          reportStore,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", serviceInfoMvc.GetRoot)
	e.GET("/status", serviceInfoMvc.GetStatus)

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Analyses
	e.POST("/upload_dna", analysisMvc.UploadDna,
		// middleware
		gam.MandateUploadFile("file"))
	e.POST("/upload_parents", analysisMvc.UploadParents,
		// middleware
		gam.MandateUploadFile("file1", "file2"),
		gam.ValidateOptionalSimulationParameters)

	// -- Uploads
	e.GET("/uploads/requests", uploadsMvc.GetAllUploadRequests)

	// -- Reports
	e.GET("/reports/:id", reportsMvc.GetReport)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
