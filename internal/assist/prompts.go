package assist

import "fmt"

// AboutPrompt asks for a rewrite of the "about me" section based on the
// current text.
func AboutPrompt(current string) string {
	return fmt.Sprintf(`Ты — профессиональный копирайтер для бьюти-индустрии. Напиши привлекательный и теплый текст для раздела "Обо мне" для бьюти-мастера, основываясь на этом тексте: "%s". Улучши стиль, сделай его более личным и профессиональным. Ответ должен быть только текстом для раздела, без лишних вступлений. Язык: русский.`, current)
}

// ServicePrompt asks for a short description for a named service.
func ServicePrompt(serviceName string) string {
	return fmt.Sprintf(`Ты — профессиональный копирайтер для бьюти-индустрии. Напиши короткое (1-2 предложения) и привлекательное описание для услуги "%s". Описание должно быть на русском языке. Ответ должен содержать только текст описания.`, serviceName)
}
