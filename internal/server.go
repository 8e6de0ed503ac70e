package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/julienschmidt/httprouter"
	"net"
	"net/http"
	"thepay/config"
	"thepay/entity"
	"thepay/services"
)

const (
	createPayment = "/payment"
	readPayment   = "/payment/:signature"
	healthCheck   = "/health"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf:   conf,
		logger: NewLogger("server", conf.IsDebug, nil),
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createPayment, s.createPayment)
	router.GET(readPayment, s.readPayment)
	router.GET(healthCheck, s.health)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var order entity.PaymentOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] create payment: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// without merchant.return_url the customer returns to this endpoint, which accepts only POST;
	// API deployments should configure it
	returnUrl := s.conf.Merchant.ReturnUrl
	if returnUrl == "" {
		returnUrl = RequestUrl(r)
	}

	request, err := s.payments.CreatePayment(ctx, &order, returnUrl)
	if err != nil {
		if errors.Is(err, ErrInvalidParameter) {
			s.logger.Warn(fmt.Sprintf("[%s] create payment: %v", reqID, err))
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.logger.Error(fmt.Sprintf("[%s] create payment", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, request)
}

func (s *Server) readPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	signature := ps.ByName("signature")
	record, err := s.payments.GetPayment(ctx, signature)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, record)
	case errors.Is(err, ErrPaymentNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrDatabaseNotSet):
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		s.logger.Error(fmt.Sprintf("[%s] read payment", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("write response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// RequestUrl returns the absolute URL of the inbound request: the scheme follows the
// transport (or a TLS-terminating proxy), host and path are taken from the request.
func RequestUrl(r *http.Request) string {
	if r.Host == "" || r.URL == nil {
		return ""
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
