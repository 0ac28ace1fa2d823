package workbook

import "github.com/sirupsen/logrus"

// ProgressSink recebe o andamento incremental de uma varredura. É o único
// efeito colateral visível da varredura; nada passa por estado global.
type ProgressSink interface {
	Progress(rowsProcessed int, message string)
}

// NopSink descarta o progresso.
type NopSink struct{}

func (NopSink) Progress(int, string) {}

// LogSink publica o progresso no logrus.
type LogSink struct{}

func (LogSink) Progress(rowsProcessed int, message string) {
	logrus.WithFields(logrus.Fields{
		"rows_processed": rowsProcessed,
	}).Debug(message)
}
