package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewCollector(t *testing.T) {
	c := NewCollector()
	if c == nil {
		t.Fatal("NewCollector() returned nil")
	}

	if c.EntitiesGeneratedTotal == nil {
		t.Error("EntitiesGeneratedTotal not initialized")
	}
	if c.RelationshipsWovenTotal == nil {
		t.Error("RelationshipsWovenTotal not initialized")
	}
	if c.GenerationDurationSecs == nil {
		t.Error("GenerationDurationSecs not initialized")
	}
	if c.QualityComponentScore == nil {
		t.Error("QualityComponentScore not initialized")
	}
	if c.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestEntitiesGenerated(t *testing.T) {
	c := NewCollector()

	c.EntitiesGenerated("person", 100)
	c.EntitiesGenerated("person", 50)
	c.EntitiesGenerated("system", 20)

	counter, err := c.EntitiesGeneratedTotal.GetMetricWithLabelValues("person")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 150 {
		t.Errorf("Counter value = %v, want 150", metric.Counter.GetValue())
	}
}

func TestRelationshipWoven(t *testing.T) {
	c := NewCollector()

	c.RelationshipWoven("works_in")
	c.RelationshipWoven("works_in")
	c.RelationshipWoven("reports_to")

	counter, err := c.RelationshipsWovenTotal.GetMetricWithLabelValues("works_in")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}
}

func TestGenerationCompleted(t *testing.T) {
	c := NewCollector()

	c.GenerationCompleted(250*time.Millisecond, 1200, 3400)

	var metric dto.Metric
	if err := c.GraphEntitiesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 1200 {
		t.Errorf("GraphEntitiesTotal = %v, want 1200", metric.Gauge.GetValue())
	}

	if err := c.GraphRelationshipsTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 3400 {
		t.Errorf("GraphRelationshipsTotal = %v, want 3400", metric.Gauge.GetValue())
	}
}

func TestQualityScores(t *testing.T) {
	c := NewCollector()

	c.QualityScores(map[string]float64{"overall": 0.92, "risk_math": 1.0})

	gauge, err := c.QualityComponentScore.GetMetricWithLabelValues("overall")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Gauge.GetValue() != 0.92 {
		t.Errorf("Gauge value = %v, want 0.92", metric.Gauge.GetValue())
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector

	c.EntitiesGenerated("person", 10)
	c.RelationshipWoven("works_in")
	c.GenerationCompleted(time.Second, 1, 1)
	c.QualityScores(map[string]float64{"overall": 1.0})

	if c.Registry() != nil {
		t.Error("nil collector should return nil registry")
	}
}
