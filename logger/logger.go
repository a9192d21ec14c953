package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Field struct {
	Key   string
	Value interface{}
}

var log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("DEBUG") != "1" {
		log = log.Level(zerolog.InfoLevel)
	}
}

func emit(e *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	e.Msg(msg)
}

func Info(msg string, fields ...Field) {
	emit(log.Info(), msg, fields)
}

func Warn(msg string, fields ...Field) {
	emit(log.Warn(), msg, fields)
}

func Error(msg string, err error, fields ...Field) {
	emit(log.Error().Err(err), msg, fields)
}

func Debug(msg string, fields ...Field) {
	emit(log.Debug(), msg, fields)
}

func FieldKV(key string, value interface{}) Field { return Field{Key: key, Value: value} }
