package service

import (
	"fmt"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailService delivers transactional mail. In development mode the
// message is logged instead of sent so webhook flows can run without
// SMTP credentials.
type EmailService struct {
	cfg config.EmailConfig
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) SendWelcome(name, email, password string) error {
	subject := "🎉 Bem-vindo ao DDPlanner - Suas credenciais de acesso"
	body := fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333">
			<div style="background:linear-gradient(135deg,#06b6d4,#8b5cf6);color:white;padding:30px;text-align:center;border-radius:10px 10px 0 0">
				<h1>🎉 Bem-vindo ao DDPlanner!</h1>
				<p>Sua jornada rumo à aprovação começa agora</p>
			</div>
			<div style="background:#f8f9fa;padding:30px;border-radius:0 0 10px 10px">
				<h2>Olá, %s!</h2>
				<p>Sua assinatura foi confirmada e sua conta está pronta. Use as credenciais abaixo para acessar a plataforma:</p>
				<div style="background:white;padding:20px;border-radius:8px;border-left:4px solid #06b6d4;margin:20px 0">
					<p><strong>E-mail:</strong> %s</p>
					<p><strong>Senha:</strong> %s</p>
				</div>
				<p>Recomendamos alterar sua senha após o primeiro acesso.</p>
				<div style="text-align:center">
					<a href="https://ddplanner.com.br" style="display:inline-block;background:#06b6d4;color:white;padding:12px 24px;border-radius:8px;text-decoration:none">Acessar o DDPlanner</a>
				</div>
			</div>
		</div>`, name, email, password)

	return s.send(email, subject, body)
}

func (s *EmailService) SendSubscriptionCancelled(name, email string) error {
	subject := "😔 Assinatura Cancelada - DDPlanner"
	body := fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333">
			<h2>Olá, %s</h2>
			<p>Recebemos a informação de que sua assinatura do DDPlanner foi cancelada.</p>
			<p><strong>O que isso significa:</strong></p>
			<ul>
				<li>Seu acesso à plataforma será mantido até o final do período já pago</li>
				<li>Você não será cobrado novamente</li>
				<li>Seus dados e progresso serão preservados</li>
			</ul>
			<p>Se você mudou de ideia ou o cancelamento foi um engano, você pode reativar sua assinatura a qualquer momento:</p>
			<div style="text-align:center">
				<a href="https://ddplanner.com.br" style="display:inline-block;background:#06b6d4;color:white;padding:12px 24px;border-radius:8px;text-decoration:none">🔄 Reativar Assinatura</a>
			</div>
		</div>`, name)

	return s.send(email, subject, body)
}

func (s *EmailService) send(to, subject, html string) error {
	if s.cfg.Mode == "development" {
		logger.Log.Info("email simulated",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	logger.Log.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
