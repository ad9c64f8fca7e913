package synth

// Static vocabulary for the deterministic value source. The lists are
// intentionally fixed: changing them changes every seeded run's output.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen", "Charles",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Sandra",
	"Mark", "Margaret", "Donald", "Ashley", "Steven", "Kimberly", "Andrew",
	"Emily", "Paul", "Donna", "Joshua", "Michelle", "Kenneth", "Carol",
	"Kevin", "Amanda", "Brian", "Melissa", "George", "Deborah", "Samir",
	"Priya", "Wei", "Yuki", "Carlos", "Ingrid", "Olu", "Fatima",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Chen", "Patel", "Kim", "Okafor", "Tanaka", "Novak", "Haddad",
}

var companyAdjectives = []string{
	"Apex", "Vertex", "Summit", "Quantum", "Stellar", "Cobalt", "Meridian",
	"Pinnacle", "Atlas", "Horizon", "Crescent", "Granite", "Beacon",
	"Northwind", "Silverline", "Ironclad", "Bluepeak", "Clearwater",
}

var companyNouns = []string{
	"Data", "Cloud", "Security", "Logistics", "Analytics", "Networks",
	"Software", "Consulting", "Payments", "Infrastructure", "Platforms",
	"Integration", "Hosting", "Intelligence",
}

var companySuffixes = []string{
	"Systems", "Group", "Partners", "Solutions", "Labs", "Corp", "Inc",
	"Holdings", "Technologies",
}

var hostSites = []string{
	"corp.internal", "prod.internal", "dc1.internal", "dc2.internal",
	"cloud.internal",
}

var loremWords = []string{
	"service", "platform", "pipeline", "workload", "cluster", "policy",
	"access", "control", "inventory", "telemetry", "baseline", "exposure",
	"segment", "boundary", "module", "release", "runtime", "storage",
	"identity", "account", "region", "tenant", "backlog", "roadmap",
	"handler", "gateway", "broker", "ledger", "archive", "catalog",
	"compliance", "audit", "recovery", "failover", "quorum", "snapshot",
	"routing", "capacity", "latency", "throughput", "budget", "forecast",
	"vendor", "contract", "charter", "mandate", "review", "approval",
	"escalation", "rotation", "patching", "hardening", "provisioning",
	"monitoring", "alerting", "retention", "classification", "encryption",
}

var cityCountryRegion = [][3]string{
	{"San Francisco", "United States", "AMER"},
	{"New York", "United States", "AMER"},
	{"Austin", "United States", "AMER"},
	{"Toronto", "Canada", "AMER"},
	{"Sao Paulo", "Brazil", "AMER"},
	{"London", "United Kingdom", "EMEA"},
	{"Dublin", "Ireland", "EMEA"},
	{"Berlin", "Germany", "EMEA"},
	{"Amsterdam", "Netherlands", "EMEA"},
	{"Paris", "France", "EMEA"},
	{"Zurich", "Switzerland", "EMEA"},
	{"Tel Aviv", "Israel", "EMEA"},
	{"Singapore", "Singapore", "APAC"},
	{"Tokyo", "Japan", "APAC"},
	{"Sydney", "Australia", "APAC"},
	{"Bangalore", "India", "APAC"},
	{"Seoul", "South Korea", "APAC"},
	{"Hong Kong", "Hong Kong", "APAC"},
}

var siteTypes = []string{"hq", "branch", "datacenter", "remote_hub"}

var operatingSystems = []string{
	"Ubuntu 22.04", "Ubuntu 24.04", "RHEL 9", "Debian 12",
	"Windows Server 2022", "Amazon Linux 2023",
}

var environments = []string{"production", "staging", "development"}

var criticalityLevels = []string{"low", "medium", "high", "critical"}

// criticalityWeights bias sampling toward the middle of the scale.
var criticalityWeights = []float64{0.2, 0.4, 0.3, 0.1}

// systemStacks maps a system type to its coherent technology choices.
// The quality scorer checks generated systems against this same table,
// so a system's stack is consistent with its type by construction.
var systemStacks = map[string][]string{
	"web_server":         {"nginx", "haproxy", "apache", "envoy", "varnish"},
	"application_server": {"go", "java", "python", "node", "dotnet", "tomcat"},
	"database":           {"postgresql", "mysql", "mongodb", "oracle", "sqlserver"},
	"cache":              {"redis", "memcached", "hazelcast"},
	"message_queue":      {"kafka", "rabbitmq", "nats", "sqs"},
	"file_server":        {"samba", "nfs", "minio", "sftp"},
	"load_balancer":      {"haproxy", "nginx", "f5", "envoy"},
	"monitoring":         {"prometheus", "grafana", "zabbix", "datadog-agent"},
}

var systemTypes = []string{
	"web_server", "application_server", "database", "cache",
	"message_queue", "file_server", "load_balancer", "monitoring",
}

var networkZones = []string{"dmz", "internal", "management", "guest"}

var dataFormats = []string{"parquet", "csv", "json", "avro", "sql_dump", "object_store"}

var classifications = []string{"public", "internal", "confidential", "restricted"}

// classificationRegulations lists the regimes a sensitive asset can fall
// under. Restricted and confidential assets always carry at least one.
var classificationRegulations = []string{"GDPR", "HIPAA", "PCI-DSS", "SOX", "CCPA", "GLBA"}

var policyTypes = []string{
	"access_control", "data_retention", "incident_response",
	"acceptable_use", "encryption", "vendor_management",
	"change_management", "backup_recovery",
}

var policyFrameworks = []string{"ISO27001", "NIST-CSF", "SOC2", "CIS", "COBIT"}

var vendorServices = []string{
	"cloud hosting", "payroll processing", "crm", "email delivery",
	"security monitoring", "backup storage", "hr platform",
	"payment processing", "analytics", "device management",
}

var vendorCertifications = []string{"SOC2 Type II", "ISO27001", "PCI-DSS", "FedRAMP", "CSA STAR"}

var riskTiers = []string{"low", "medium", "high"}

var actorTypes = []string{"nation_state", "cybercrime", "hacktivist", "insider"}

// sophisticationLevels is ordered from least to most capable; actor
// generation slices it per actor type.
var sophisticationLevels = []string{"low", "moderate", "high", "advanced"}

var ttpCatalog = []string{
	"spearphishing", "credential_stuffing", "supply_chain_compromise",
	"lateral_movement", "privilege_escalation", "data_exfiltration",
	"ransomware_deployment", "watering_hole", "living_off_the_land",
	"dns_tunneling",
}

var incidentTypes = []string{
	"phishing", "malware", "unauthorized_access", "data_leak",
	"denial_of_service", "misconfiguration", "insider_misuse",
	"lost_device",
}

var incidentStatuses = []string{"open", "investigating", "contained", "resolved"}

var seniorities = []string{"junior", "mid", "senior", "staff", "principal"}

var skillCatalog = []string{
	"python", "go", "sql", "kubernetes", "terraform", "incident_response",
	"data_modeling", "threat_hunting", "project_management", "negotiation",
	"financial_analysis", "recruiting", "copywriting", "sre",
}

// rolePermissions maps role archetypes to their permission grants.
// Privileged archetypes always get elevated grants plus MFA.
var rolePermissions = map[string][]string{
	"administrator": {"admin:*", "iam:manage", "audit:read", "system:configure"},
	"engineer":      {"code:write", "deploy:staging", "logs:read"},
	"analyst":       {"reports:read", "dashboards:read", "data:query"},
	"manager":       {"approvals:grant", "reports:read", "budget:view"},
	"auditor":       {"audit:read", "logs:read", "policy:read"},
	"operator":      {"deploy:production", "incident:manage", "system:restart", "secrets:read"},
}

// privilegedArchetypes marks which role archetypes imply elevated access.
var privilegedArchetypes = map[string]bool{
	"administrator": true,
	"operator":      true,
}

var roleArchetypes = []string{
	"administrator", "engineer", "analyst", "manager", "auditor", "operator",
}
