package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		chief string
		onset string
		want  string
	}{
		{
			name:  "acute chest pain",
			chief: "Chest pain",
			onset: "2 hours ago",
			want:  "Acute chest pain; rule out acute coronary syndrome, evaluate for pulmonary embolism and aortic dissection",
		},
		{
			name:  "acute by this morning",
			chief: "Chest pain",
			onset: "this morning",
			want:  "Acute chest pain; rule out acute coronary syndrome, evaluate for pulmonary embolism and aortic dissection",
		},
		{
			name:  "routine chest pain",
			chief: "Chest pain",
			onset: "3 weeks ago",
			want:  "Chest pain, likely musculoskeletal or gastroesophageal; cardiac risk stratification indicated",
		},
		{
			name:  "acute palpitations",
			chief: "Palpitations",
			onset: "30 minutes ago",
			want:  "Acute palpitations; evaluate for arrhythmia with ECG and electrolytes",
		},
		{
			name:  "routine dyspnea",
			chief: "Shortness of breath",
			onset: "2 months ago",
			want:  "Chronic dyspnea; consider pulmonary function testing and cardiac workup",
		},
		{
			name:  "acute headache",
			chief: "Headache",
			onset: "today",
			want:  "Acute headache; assess for red flag features, consider neuroimaging",
		},
		{
			name:  "fallback",
			chief: "Back pain",
			onset: "yesterday",
			want:  FallbackAssessment,
		},
		{
			name:  "fallback sentinel",
			chief: "Unspecified complaint",
			onset: "",
			want:  FallbackAssessment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.chief, tt.onset))
		})
	}
}
