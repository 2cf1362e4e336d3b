package docnodes

import "math/rand/v2"

const (
	uidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	UIDLength   = 12
)

// NewUID возвращает структурный идентификатор узла: 12 символов [A-Za-z0-9].
// Уникальность не проверяется, коллизии маловероятны, но возможны.
// Не подходит для задач безопасности.
func NewUID() string {
	b := make([]byte, UIDLength)
	for i := range b {
		b[i] = uidAlphabet[rand.IntN(len(uidAlphabet))]
	}
	return string(b)
}
