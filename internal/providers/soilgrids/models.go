package soilgrids

import "encoding/json"

// ClassificationAPIResponse is the ISRIC SoilGrids WRB classification for a
// coordinate. Probabilities come as [class, percent] pairs.
type ClassificationAPIResponse struct {
	Type                string             `json:"type"`
	WrbClassName        string             `json:"wrb_class_name"`
	WrbClassValue       int                `json:"wrb_class_value"`
	WrbClassProbability []ClassProbability `json:"wrb_class_probability"`
}

// ClassProbability decodes the API's mixed [string, number] tuple
type ClassProbability struct {
	ClassName   string
	Probability float64
}

func (p *ClassProbability) UnmarshalJSON(data []byte) error {
	var tuple []any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) > 0 {
		if s, ok := tuple[0].(string); ok {
			p.ClassName = s
		}
	}
	if len(tuple) > 1 {
		if f, ok := tuple[1].(float64); ok {
			p.Probability = f
		}
	}
	return nil
}
