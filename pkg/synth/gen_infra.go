package synth

import (
	"fmt"
	"math"
	"strings"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// NetworkGenerator emits routed segments. The first network is always
// an internal zone so systems have somewhere safe to land.
type NetworkGenerator struct{}

func (NetworkGenerator) Kind() model.Kind { return model.KindNetwork }

func (NetworkGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		zone := Choice(gc.Rand, networkZones)
		if i == 0 {
			zone = "internal"
		}

		net := &model.Network{
			Base:   model.NewBase(gc.Rand.UUID(), model.KindNetwork, fmt.Sprintf("net-%s-%02d", zone, i+1), gc.Now()),
			CIDR:   gc.Rand.CIDR(),
			Zone:   zone,
			VLANID: gc.Rand.IntRange(10, 4094),
		}
		net.Description = fmt.Sprintf("Routed %s segment %s on VLAN %d. %s",
			zone, net.CIDR, net.VLANID, gc.Rand.Sentence(6))
		net.Tags = []string{"network", zone}
		out = append(out, net)
	}
	gc.Store(model.KindNetwork, out)
	return out
}

// hostPrefixes shortens a system type into its hostname prefix.
var hostPrefixes = map[string]string{
	"web_server":         "web",
	"application_server": "app",
	"database":           "db",
	"cache":              "cache",
	"message_queue":      "mq",
	"file_server":        "file",
	"load_balancer":      "lb",
	"monitoring":         "mon",
}

// SystemGenerator emits compute workloads whose technology stack is
// drawn from their type's coherent stack table.
type SystemGenerator struct{}

func (SystemGenerator) Kind() model.Kind { return model.KindSystem }

func (SystemGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		systemType := Choice(gc.Rand, systemTypes)
		stack := Sample(gc.Rand, systemStacks[systemType], gc.Rand.IntRange(1, 3))
		criticality := criticalityLevels[gc.Rand.WeightedIndex(criticalityWeights)]

		envIdx := gc.Rand.WeightedIndex([]float64{0.6, 0.25, 0.15})
		environment := environments[envIdx]

		hostname := gc.Rand.Hostname(hostPrefixes[systemType], i+1)

		sys := &model.System{
			Base:        model.NewBase(gc.Rand.UUID(), model.KindSystem, hostname, gc.Now()),
			Hostname:    hostname,
			IP:          gc.Rand.IPv4(),
			OS:          Choice(gc.Rand, operatingSystems),
			SystemType:  systemType,
			TechStack:   stack,
			Criticality: criticality,
			Environment: environment,
		}
		sys.Description = fmt.Sprintf("%s %s running %s on %s in %s. %s",
			titleCase(criticality), strings.ReplaceAll(systemType, "_", " "),
			strings.Join(stack, ", "), sys.OS, environment, gc.Rand.Sentence(5))
		sys.Tags = []string{"system", systemType, environment}
		out = append(out, sys)
	}
	gc.Store(model.KindSystem, out)
	return out
}

// VendorGenerator emits third-party suppliers. A high-risk vendor with
// data access always carries at least one compliance certification.
type VendorGenerator struct{}

func (VendorGenerator) Kind() model.Kind { return model.KindVendor }

func (VendorGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		name := gc.Rand.CompanyName()
		riskTier := riskTiers[gc.Rand.WeightedIndex([]float64{0.4, 0.4, 0.2})]
		dataAccess := gc.Rand.Chance(0.5)

		var certs []string
		if riskTier == "high" && dataAccess {
			certs = Sample(gc.Rand, vendorCertifications, gc.Rand.IntRange(1, 3))
		} else if gc.Rand.Chance(0.4) {
			certs = Sample(gc.Rand, vendorCertifications, 1)
		}

		vendor := &model.Vendor{
			Base:           model.NewBase(gc.Rand.UUID(), model.KindVendor, name, gc.Now()),
			Service:        Choice(gc.Rand, vendorServices),
			RiskTier:       riskTier,
			DataAccess:     dataAccess,
			Certifications: certs,
			AnnualValue:    math.Round(gc.Rand.FloatRange(10_000, 2_000_000)),
		}
		vendor.Description = fmt.Sprintf("%s provides %s at risk tier %s with annual spend of $%.0f. %s",
			name, vendor.Service, riskTier, vendor.AnnualValue, gc.Rand.Sentence(5))
		vendor.Tags = []string{"vendor", riskTier}
		if dataAccess {
			vendor.Tags = append(vendor.Tags, "data_access")
		}
		out = append(out, vendor)
	}
	gc.Store(model.KindVendor, out)
	return out
}

// classificationWeights bias data assets toward internal/confidential.
var classificationWeights = []float64{0.15, 0.35, 0.30, 0.20}

// DataAssetGenerator emits classified data holdings. Restricted and
// confidential assets are always encrypted and always regulated.
type DataAssetGenerator struct{}

func (DataAssetGenerator) Kind() model.Kind { return model.KindDataAsset }

func (DataAssetGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		classification := classifications[gc.Rand.WeightedIndex(classificationWeights)]
		sensitive := classification == "confidential" || classification == "restricted"

		encrypted := sensitive
		if !sensitive {
			encrypted = gc.Rand.Chance(0.4)
		}

		var regulations []string
		if sensitive {
			regulations = Sample(gc.Rand, classificationRegulations, gc.Rand.IntRange(1, 3))
		} else if gc.Rand.Chance(0.2) {
			regulations = Sample(gc.Rand, classificationRegulations, 1)
		}

		retention := gc.Rand.IntRange(90, 1095)
		if classification == "restricted" {
			retention = gc.Rand.IntRange(730, 3650)
		}

		name := fmt.Sprintf("%s-%s-%03d", gc.Rand.Word(), Choice(gc.Rand, dataFormats), i+1)
		asset := &model.DataAsset{
			Base:           model.NewBase(gc.Rand.UUID(), model.KindDataAsset, name, gc.Now()),
			Classification: classification,
			Format:         Choice(gc.Rand, dataFormats),
			SizeGB:         math.Round(gc.Rand.FloatRange(0.1, 5000)*10) / 10,
			Encrypted:      encrypted,
			Regulations:    regulations,
			RetentionDays:  retention,
		}
		asset.Description = fmt.Sprintf("%s data asset (%.1f GB, %s format) retained for %d days. %s",
			titleCase(classification), asset.SizeGB, asset.Format, retention, gc.Rand.Sentence(5))
		asset.Tags = []string{"data_asset", classification}
		if encrypted {
			asset.Tags = append(asset.Tags, "encrypted")
		}
		out = append(out, asset)
	}
	gc.Store(model.KindDataAsset, out)
	return out
}

// PolicyGenerator emits governance policies cycling through the policy
// type catalog. Mandatory policies review at least annually.
type PolicyGenerator struct{}

func (PolicyGenerator) Kind() model.Kind { return model.KindPolicy }

func (PolicyGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		policyType := policyTypes[i%len(policyTypes)]
		mandatory := gc.Rand.Chance(0.6)

		reviewCycle := gc.Rand.IntRange(6, 24)
		if mandatory {
			reviewCycle = gc.Rand.IntRange(3, 12)
		}

		name := policyName(policyType)
		if i >= len(policyTypes) {
			name = fmt.Sprintf("%s v%d", name, i/len(policyTypes)+1)
		}

		policy := &model.Policy{
			Base:              model.NewBase(gc.Rand.UUID(), model.KindPolicy, name, gc.Now()),
			PolicyType:        policyType,
			Framework:         Choice(gc.Rand, policyFrameworks),
			ReviewCycleMonths: reviewCycle,
			Mandatory:         mandatory,
		}
		policy.Description = fmt.Sprintf("%s aligned to %s, reviewed every %d months. %s",
			name, policy.Framework, reviewCycle, gc.Rand.Sentence(6))
		policy.Tags = []string{"policy", policyType}
		if mandatory {
			policy.Tags = append(policy.Tags, "mandatory")
		}
		out = append(out, policy)
	}
	gc.Store(model.KindPolicy, out)
	return out
}

func policyName(policyType string) string {
	words := strings.Split(policyType, "_")
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ") + " Policy"
}
