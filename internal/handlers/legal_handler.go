package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - Joi Logs</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: February 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, username, and the journal entries you write. Your journal is visible only to you.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate Joi Logs, authenticate your account, and keep your streak counters up to date.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@joilogs.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - Joi Logs</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: February 2026</p>
<h2>Acceptance</h2>
<p>By using Joi Logs, you agree to these terms.</p>
<h2>Your Content</h2>
<p>You own the journal entries you write. We store them only to show them back to you.</p>
<h2>Premium</h2>
<p>Premium unlocks the support chat. Premium payments in this app are processed by a demonstration payment flow.</p>
<h2>Termination</h2>
<p>You may stop using the service and delete your account at any time.</p>
</body></html>`)
}
