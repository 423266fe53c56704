package normalize

// pipelineNames are the Hub's display names for model pipeline tags.
var pipelineNames = map[string]string{
	"text-classification":            "Text Classification",
	"token-classification":           "Token Classification",
	"table-question-answering":       "Table Question Answering",
	"question-answering":             "Question Answering",
	"zero-shot-classification":       "Zero-Shot Classification",
	"translation":                    "Translation",
	"summarization":                  "Summarization",
	"feature-extraction":             "Feature Extraction",
	"text-generation":                "Text Generation",
	"text2text-generation":           "Text2Text Generation",
	"fill-mask":                      "Fill-Mask",
	"sentence-similarity":            "Sentence Similarity",
	"text-to-speech":                 "Text-to-Speech",
	"text-to-audio":                  "Text-to-Audio",
	"automatic-speech-recognition":   "Automatic Speech Recognition",
	"audio-to-audio":                 "Audio-to-Audio",
	"audio-classification":           "Audio Classification",
	"audio-text-to-text":             "Audio-Text-to-Text",
	"voice-activity-detection":       "Voice Activity Detection",
	"depth-estimation":               "Depth Estimation",
	"image-classification":           "Image Classification",
	"object-detection":               "Object Detection",
	"image-segmentation":             "Image Segmentation",
	"text-to-image":                  "Text-to-Image",
	"image-to-text":                  "Image-to-Text",
	"image-to-image":                 "Image-to-Image",
	"image-to-video":                 "Image-to-Video",
	"unconditional-image-generation": "Unconditional Image Generation",
	"video-classification":           "Video Classification",
	"reinforcement-learning":         "Reinforcement Learning",
	"robotics":                       "Robotics",
	"tabular-classification":         "Tabular Classification",
	"tabular-regression":             "Tabular Regression",
	"tabular-to-text":                "Tabular to Text",
	"table-to-text":                  "Table to Text",
	"multiple-choice":                "Multiple Choice",
	"text-ranking":                   "Text Ranking",
	"text-retrieval":                 "Text Retrieval",
	"time-series-forecasting":        "Time Series Forecasting",
	"text-to-video":                  "Text-to-Video",
	"image-text-to-text":             "Image-Text-to-Text",
	"visual-question-answering":      "Visual Question Answering",
	"document-question-answering":    "Document Question Answering",
	"zero-shot-image-classification": "Zero-Shot Image Classification",
	"graph-ml":                       "Graph Machine Learning",
	"mask-generation":                "Mask Generation",
	"zero-shot-object-detection":     "Zero-Shot Object Detection",
	"text-to-3d":                     "Text-to-3D",
	"image-to-3d":                    "Image-to-3D",
	"image-feature-extraction":       "Image Feature Extraction",
	"video-text-to-text":             "Video-Text-to-Text",
	"keypoint-detection":             "Keypoint Detection",
	"visual-document-retrieval":      "Visual Document Retrieval",
	"any-to-any":                     "Any-to-Any",
	"other":                          "Other",
}

// hardwareNames are the display names of space hardware flavors.
var hardwareNames = map[string]string{
	"cpu-basic":       "CPU Basic",
	"cpu-upgrade":     "CPU Upgrade",
	"cpu-performance": "CPU Performance",
	"cpu-xl":          "CPU XL",
	"zero-a10g":       "Zero",
	"a10g-small":      "A10G",
	"a10g-large":      "A10G",
	"a10g-largex2":    "A10G",
	"a10g-largex4":    "A10G",
	"a100-large":      "A100 Large",
	"h100":            "H100",
	"h100x8":          "H100",
	"t4-small":        "T4",
	"t4-medium":       "T4",
	"l4x1":            "L4",
	"l4x4":            "L4",
	"l40sx1":          "L40S",
	"l40sx4":          "L40S",
	"l40sx8":          "L40S",
}

// displayName looks s up in table, falling back to s itself.
func displayName(table map[string]string, s string) string {
	if name, ok := table[s]; ok {
		return name
	}
	return s
}
