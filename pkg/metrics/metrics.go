// Package metrics defines Prometheus metrics for the inquiry relay and the
// sitemap generator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Outcome is one of: sent, rejected, misconfigured, failed
	Inquiries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kamenpro_inquiries_total",
		Help: "Total number of inquiry submissions by outcome",
	}, []string{"outcome"})
	ContactMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kamenpro_contact_messages_total",
		Help: "Total number of contact form submissions by outcome",
	}, []string{"outcome"})
	MailDispatch = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kamenpro_mail_dispatch_total",
		Help: "Total number of outbound mail dispatch attempts by transport and result",
	}, []string{"transport", "result"})
	SitemapGenerations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kamenpro_sitemap_generations_total",
		Help: "Total number of sitemap generations by producing branch (dynamic or fallback)",
	}, []string{"source"})
	WebhookNotifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kamenpro_webhook_notifications_total",
		Help: "Total number of inquiry webhook notifications by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(Inquiries)
	prometheus.MustRegister(ContactMessages)
	prometheus.MustRegister(MailDispatch)
	prometheus.MustRegister(SitemapGenerations)
	prometheus.MustRegister(WebhookNotifications)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
