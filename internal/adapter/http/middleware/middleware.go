package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Header names for webhook authentication
	HeaderSignature = "X-Hub-Signature-256"
	HeaderDelivery  = "X-Delivery-ID"

	// Delivery dedup window
	deliveryTTL = 24 * time.Hour

	// Context keys
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxDelivery = "delivery_id"
	CtxRawBody  = "raw_body"
)

// WebhookAuth verifies the HMAC signature on inbound comment events and
// suppresses redelivered events. The raw body is stashed in the context
// for the handler to decode.
func WebhookAuth(
	secret string,
	sigSvc ports.SignatureService,
	deduper ports.DeliveryDeduper,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(HeaderSignature)
		deliveryID := c.GetHeader(HeaderDelivery)

		if signature == "" || deliveryID == "" {
			response.Error(c, apperror.Unauthenticated())
			c.Abort()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.InvalidArgument("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if !sigSvc.Verify(secret, bodyBytes, signature) {
			response.Error(c, apperror.Unauthenticated())
			c.Abort()
			return
		}

		// Delivery is at-least-once: drop replays, but let requests
		// through when the dedup store is unreachable.
		isNew, err := deduper.CheckAndSet(c.Request.Context(), deliveryID, deliveryTTL)
		if err != nil {
			log.Warn().Err(err).Msg("dedup store error, allowing request")
		} else if !isNew {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Set(CtxDelivery, deliveryID)
		c.Set(CtxRawBody, bodyBytes)

		c.Next()
	}
}

// JWTAuth creates a middleware that validates bearer tokens on the
// callable entry points.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.Unauthenticated())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.Unauthenticated())
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "INTERNAL",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits request body size.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
