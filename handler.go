package pipelog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Формат временной метки в строке лога.
const timeLayout = "2006-01-02 15:04:05"

// lineHandler реализует slog.Handler с фиксированным текстовым форматом:
//
//	2006-01-02 15:04:05 - имя - УРОВЕНЬ - сообщение
//
// Дополнительные атрибуты записи дописываются в конец строки как key=value.
// Все приёмники (файл и консоль) получают одну и ту же строку через
// общий io.Writer.
type lineHandler struct {
	name  string
	level slog.Leveler

	// attrs — атрибуты, накопленные через WithAttrs
	attrs []slog.Attr

	// mu защищает w от конкурентных записей; указатель, чтобы копии
	// handler-а из WithAttrs делили один мьютекс
	mu *sync.Mutex
	w  io.Writer
}

// newLineHandler создаёт handler с фиксированным форматом строки.
// name попадает во второе поле каждой записи.
func newLineHandler(w io.Writer, name string, level slog.Leveler) *lineHandler {
	return &lineHandler{
		name:  name,
		level: level,
		mu:    &sync.Mutex{},
		w:     w,
	}
}

// Enabled сообщает, проходит ли уровень порог handler-а.
func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle форматирует запись в одну строку и пишет её в writer.
// Ошибка записи возвращается slog, который сообщает о ней через
// свой внутренний механизм, не прерывая вызывающий код.
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(r.Time.Format(timeLayout))
	buf.WriteString(" - ")
	buf.WriteString(h.name)
	buf.WriteString(" - ")
	buf.WriteString(levelName(r.Level))
	buf.WriteString(" - ")
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		appendAttr(&buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs возвращает копию handler-а с добавленными атрибутами.
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	nh.attrs = append(nh.attrs, attrs...)
	return &nh
}

// WithGroup возвращает handler без изменений: группы в плоском
// строковом формате не поддерживаются.
func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

// appendAttr дописывает атрибут к строке как " key=value".
func appendAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	fmt.Fprint(buf, a.Value.Resolve().Any())
}
