package translate

// Request captures the payload accepted by the translate endpoint.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Response is serialized back to API consumers.
type Response struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Result is what a translation provider hands back after normalization.
type Result struct {
	TranslatedText   string
	DetectedLanguage string
}
