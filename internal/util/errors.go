package util

import "errors"

var (
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailRegistered      = errors.New("este e-mail já está cadastrado")
	ErrInvalidCredentials   = errors.New("e-mail ou senha inválidos")
	ErrNoActiveSubscription = errors.New("nenhuma assinatura ativa encontrada")
	ErrUnknownExam          = errors.New("concurso não suportado")
	ErrInvalidHours         = errors.New("horas líquidas de estudo inválidas")
	ErrInvalidPeriod        = errors.New("período de estudo inválido")
	ErrInvalidPlatform      = errors.New("plataforma de estudo inválida")
	ErrPlanNotFound         = errors.New("plano de estudos não encontrado")
	ErrInvalidWebhook       = errors.New("payload do webhook inválido")
)
