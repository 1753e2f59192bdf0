package service

import "regexp"

// Extractor ищет короткую ссылку в теле ответа бэкенда.
type Extractor interface {
	Extract(body string) (string, bool)
}

// shortURLPattern - первая непрерывная последовательность непробельных символов,
// начинающаяся с http:// или https://.
var shortURLPattern = regexp.MustCompile(`https?://[^\s\p{Z}]+`)

// RegexpExtractor извлекает первый абсолютный http(s) URL из текста.
type RegexpExtractor struct {
	re *regexp.Regexp
}

// NewRegexpExtractor возвращает экстрактор с шаблоном по умолчанию.
func NewRegexpExtractor() *RegexpExtractor {
	return &RegexpExtractor{re: shortURLPattern}
}

func (e *RegexpExtractor) Extract(body string) (string, bool) {
	match := e.re.FindString(body)
	return match, match != ""
}
