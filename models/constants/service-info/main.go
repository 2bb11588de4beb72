package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "DNA-Insight Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the DNA-Insight trait and risk API!"
	SERVICE_DESCRIPTION ServiceInfo = "Trait prediction, health risk profiling and offspring simulation from consumer genotype exports."
	SERVICE_STATUS      ServiceInfo = "Backend running"

	SERVICE_ARTIFACT    ServiceInfo = "dna-insight"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("io.github.odurisile:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
