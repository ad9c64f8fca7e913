package synth

import (
	"strings"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
	"github.com/dd0wney/cluso-synthgraph/pkg/validation"
)

// QualityReport holds the component scores of one generated dataset.
// Every score is in [0, 1]; a component with nothing to assess scores
// a clean 1.0 rather than penalizing an empty dataset.
type QualityReport struct {
	Overall          float64 `json:"overall"`
	RiskMath         float64 `json:"risk_math"`
	Description      float64 `json:"description"`
	TechStack        float64 `json:"tech_stack"`
	FieldCorrelation float64 `json:"field_correlation"`
	Encryption       float64 `json:"encryption"`
	EntitiesAssessed int     `json:"entities_assessed"`
}

// ComponentScores returns the sub-scores keyed for metrics export.
func (r QualityReport) ComponentScores() map[string]float64 {
	return map[string]float64{
		"overall":           r.Overall,
		"risk_math":         r.RiskMath,
		"description":       r.Description,
		"tech_stack":        r.TechStack,
		"field_correlation": r.FieldCorrelation,
		"encryption":        r.Encryption,
	}
}

// ScorerConfig weights the components of the overall score. Zero-value
// weights fall back to an equal split.
type ScorerConfig struct {
	RiskMathWeight         float64 `validate:"gte=0"`
	DescriptionWeight      float64 `validate:"gte=0"`
	TechStackWeight        float64 `validate:"gte=0"`
	FieldCorrelationWeight float64 `validate:"gte=0"`
	EncryptionWeight       float64 `validate:"gte=0"`
}

// DefaultScorerConfig weights every component equally.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		RiskMathWeight:         1,
		DescriptionWeight:      1,
		TechStackWeight:        1,
		FieldCorrelationWeight: 1,
		EncryptionWeight:       1,
	}
}

// Validate rejects negative weights.
func (c ScorerConfig) Validate() error {
	return validation.Struct(c)
}

func (c ScorerConfig) normalized() ScorerConfig {
	total := c.RiskMathWeight + c.DescriptionWeight + c.TechStackWeight +
		c.FieldCorrelationWeight + c.EncryptionWeight
	if total <= 0 {
		return DefaultScorerConfig().normalized()
	}
	return ScorerConfig{
		RiskMathWeight:         c.RiskMathWeight / total,
		DescriptionWeight:      c.DescriptionWeight / total,
		TechStackWeight:        c.TechStackWeight / total,
		FieldCorrelationWeight: c.FieldCorrelationWeight / total,
		EncryptionWeight:       c.EncryptionWeight / total,
	}
}

// AssessQuality scores the entities in the context against internal
// consistency rules: risk arithmetic, description richness, tech-stack
// coherence, cross-field correlation, and encryption posture.
func AssessQuality(gc *Context, cfg ScorerConfig) QualityReport {
	weights := cfg.normalized()

	report := QualityReport{
		RiskMath:         scoreRiskMath(gc),
		Description:      scoreDescriptions(gc),
		TechStack:        scoreTechStacks(gc),
		FieldCorrelation: scoreCorrelations(gc),
		Encryption:       scoreEncryption(gc),
		EntitiesAssessed: gc.TotalEntities(),
	}
	report.Overall = report.RiskMath*weights.RiskMathWeight +
		report.Description*weights.DescriptionWeight +
		report.TechStack*weights.TechStackWeight +
		report.FieldCorrelation*weights.FieldCorrelationWeight +
		report.Encryption*weights.EncryptionWeight
	return report
}

// scoreRiskMath verifies that every severity rating matches the
// likelihood-times-impact band it claims to derive from.
func scoreRiskMath(gc *Context) float64 {
	checked, passed := 0, 0

	for _, ent := range gc.Entities(model.KindIncident) {
		incident := ent.(*model.Incident)
		checked++
		if incident.Severity == model.SeverityFor(incident.Likelihood, incident.Impact) {
			passed++
		}
	}

	for _, ent := range gc.Entities(model.KindRisk) {
		likelihood, lok := ent.Meta().Attrs["likelihood"].(float64)
		impact, iok := ent.Meta().Attrs["impact"].(float64)
		severity, sok := ent.Meta().Attrs["severity"].(string)
		if !lok || !iok || !sok {
			checked++
			continue
		}
		checked++
		if severity == model.SeverityFor(likelihood, impact) {
			passed++
		}
	}

	return ratio(passed, checked)
}

var descriptionRedFlags = []string{"todo", "placeholder", "lorem ipsum", "{{"}

// scoreDescriptions checks every entity carries a substantive
// description free of template residue.
func scoreDescriptions(gc *Context) float64 {
	checked, passed := 0, 0
	for _, kind := range gc.Kinds() {
		for _, ent := range gc.Entities(kind) {
			checked++
			if descriptionOK(ent.Meta().Description) {
				passed++
			}
		}
	}
	return ratio(passed, checked)
}

func descriptionOK(description string) bool {
	if len(description) < 20 {
		return false
	}
	lowered := strings.ToLower(description)
	for _, flag := range descriptionRedFlags {
		if strings.Contains(lowered, flag) {
			return false
		}
	}
	return true
}

// scoreTechStacks verifies each system's stack is drawn from the
// catalog for its system type, so a file server never claims to run
// Kubernetes.
func scoreTechStacks(gc *Context) float64 {
	checked, passed := 0, 0
	for _, ent := range gc.Entities(model.KindSystem) {
		system := ent.(*model.System)
		checked++
		if stackCoherent(system.SystemType, system.TechStack) {
			passed++
		}
	}
	return ratio(passed, checked)
}

func stackCoherent(systemType string, stack []string) bool {
	catalog, ok := systemStacks[systemType]
	if !ok || len(stack) == 0 {
		return false
	}
	for _, component := range stack {
		found := false
		for _, known := range catalog {
			if component == known {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// scoreCorrelations applies the cross-field rules a reviewer would
// spot-check by hand: privileged access implies MFA, critical
// departments are funded like it, risky vendors hold certifications,
// CVSS and severity ratings agree, regulated data names its regimes.
func scoreCorrelations(gc *Context) float64 {
	checked, passed := 0, 0

	for _, ent := range gc.Entities(model.KindRole) {
		role := ent.(*model.Role)
		if !role.Privileged {
			continue
		}
		checked++
		if role.MFARequired && len(role.Permissions) >= 3 {
			passed++
		}
	}

	for _, ent := range gc.Entities(model.KindDepartment) {
		dept := ent.(*model.Department)
		if dept.Criticality != "critical" {
			continue
		}
		checked++
		if dept.BudgetPerHead >= 150000 {
			passed++
		}
	}

	for _, ent := range gc.Entities(model.KindVendor) {
		vendor := ent.(*model.Vendor)
		if vendor.RiskTier != "high" || !vendor.DataAccess {
			continue
		}
		checked++
		if len(vendor.Certifications) >= 1 {
			passed++
		}
	}

	for _, ent := range gc.Entities(model.KindVulnerability) {
		vuln := ent.(*model.Vulnerability)
		checked++
		if vuln.Severity == model.CVSSSeverity(vuln.CVSS) {
			passed++
		}
	}

	for _, ent := range gc.Entities(model.KindDataAsset) {
		asset := ent.(*model.DataAsset)
		if !sensitiveClassification(asset.Classification) {
			continue
		}
		checked++
		if len(asset.Regulations) >= 1 {
			passed++
		}
	}

	return ratio(passed, checked)
}

// scoreEncryption measures what fraction of sensitive data assets are
// encrypted at rest.
func scoreEncryption(gc *Context) float64 {
	checked, passed := 0, 0
	for _, ent := range gc.Entities(model.KindDataAsset) {
		asset := ent.(*model.DataAsset)
		if !sensitiveClassification(asset.Classification) {
			continue
		}
		checked++
		if asset.Encrypted {
			passed++
		}
	}
	return ratio(passed, checked)
}

func sensitiveClassification(classification string) bool {
	return classification == "confidential" || classification == "restricted"
}

func ratio(passed, checked int) float64 {
	if checked == 0 {
		return 1.0
	}
	return float64(passed) / float64(checked)
}
