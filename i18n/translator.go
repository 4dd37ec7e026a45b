package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_key":
			return "必須キーが不足しています"
		case "type_mismatch":
			return "型が一致しません"
		case "union_mismatch":
			return "どの候補型にも一致しません"
		case "length_mismatch":
			return "要素数が一致しません"
		case "depth_exceeded":
			return "ネストが深すぎます"
		}
	default: // "en"
		switch code {
		case "missing_key":
			return "required key missing"
		case "type_mismatch":
			return "type mismatch"
		case "union_mismatch":
			return "no union alternative matched"
		case "length_mismatch":
			return "length mismatch"
		case "depth_exceeded":
			return "max depth exceeded"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
