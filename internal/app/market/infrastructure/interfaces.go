package infrastructure

import "context"

// MessagePublisher отправляет события во внешнюю очередь
// Ядро никогда не ждет результата доставки: очередь отвечает за гарантии сама
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
