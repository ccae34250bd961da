package service_test

import (
	"fmt"
	"time"
)

type DB struct{ DSN string }

type Logger struct{ Level string }

type UserService struct {
	DB     *DB
	Logger *Logger
}

type Currency string

const (
	CurrencyNone Currency = ""
	CurrencyEUR  Currency = "EUR"
	CurrencyUSD  Currency = "USD"
)

type Notifier interface {
	Notify(msg string) error
}

type EmailNotifier struct{ From string }

func (n *EmailNotifier) Notify(msg string) error {
	if msg == "" {
		return fmt.Errorf("%s: empty message", n.From)
	}
	return nil
}

type BasketService struct {
	Users    *UserService
	Items    []string
	Currency Currency
	Notifier Notifier
	Created  time.Time
}

type AuditService struct {
	Sink fmt.Stringer
	Tags map[string]string
}

func NewUserService(db *DB) *UserService {
	return &UserService{DB: db, Logger: &Logger{Level: "info"}}
}
