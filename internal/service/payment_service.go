package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"time"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/dto"
	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/repository/specification"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/pkg/events"
	pktNats "careeriq-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrUnknownTier        = errors.New("unknown tier")
	ErrTierAlreadyPaid    = errors.New("session already holds a paid tier, use an upgrade order")
	ErrTierNotUpgradeable = errors.New("target tier is not above the current tier")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrOrderNotFound      = errors.New("payment order not found")
)

type IPaymentService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	CreateUpgradeOrder(ctx context.Context, req *dto.CreateUpgradeOrderRequest) (*dto.CreateOrderResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) (*dto.VerifyPaymentResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	serverKey      string
	production     bool
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	serverKey string,
	production bool,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
		serverKey:      serverKey,
		production:     production,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	price, ok := constant.TierPrices[req.Tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.Tier)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Tier != "" {
		return nil, ErrTierAlreadyPaid
	}

	order := &entity.PaymentOrder{
		Id:         uuid.New(),
		SessionId:  session.Id,
		OrderId:    fmt.Sprintf("ciq-%s", uuid.New().String()),
		Kind:       entity.OrderKindInitial,
		TargetTier: req.Tier,
		Amount:     price,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	return s.openGatewayOrder(ctx, uow, session, order)
}

func (s *paymentService) CreateUpgradeOrder(ctx context.Context, req *dto.CreateUpgradeOrderRequest) (*dto.CreateOrderResponse, error) {
	targetPrice, ok := constant.TierPrices[req.TargetTier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.TargetTier)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	currentPrice, paid := constant.TierPrices[session.Tier]
	if !paid {
		return nil, fmt.Errorf("%w: session has no paid tier", ErrTierNotUpgradeable)
	}
	if constant.TierRank[req.TargetTier] <= constant.TierRank[session.Tier] {
		return nil, ErrTierNotUpgradeable
	}

	// Upgrades charge the exact difference, never the full price again.
	order := &entity.PaymentOrder{
		Id:         uuid.New(),
		SessionId:  session.Id,
		OrderId:    fmt.Sprintf("ciq-up-%s", uuid.New().String()),
		Kind:       entity.OrderKindUpgrade,
		TargetTier: req.TargetTier,
		Amount:     targetPrice - currentPrice,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	return s.openGatewayOrder(ctx, uow, session, order)
}

func (s *paymentService) openGatewayOrder(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, order *entity.PaymentOrder) (*dto.CreateOrderResponse, error) {
	if err := uow.PaymentOrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.production {
		env = midtrans.Production
	}
	sClient.New(s.serverKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderId,
			GrossAmt: order.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: session.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.TargetTier,
				Price: order.Amount,
				Qty:   1,
				Name:  fmt.Sprintf("CareerIQ %s report", order.TargetTier),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	order.SnapToken = snapResp.Token
	if err := uow.PaymentOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("payment", "gateway order opened", map[string]interface{}{
		"session_id":  session.Id.String(),
		"order_id":    order.OrderId,
		"kind":        order.Kind,
		"target_tier": order.TargetTier,
		"amount":      order.Amount,
	})

	return &dto.CreateOrderResponse{
		OrderId:   order.OrderId,
		SnapToken: snapResp.Token,
		Amount:    order.Amount,
		Currency:  "INR",
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) (*dto.VerifyPaymentResponse, error) {
	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("payment", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return nil, ErrInvalidSignature
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	order, err := uow.PaymentOrderRepository().FindOne(ctx, specification.Filter("order_id", req.OrderId))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: order.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if order.Status == entity.OrderStatusPaid || order.Status == entity.OrderStatusFailed {
		// Gateways redeliver webhooks. A terminal order is acknowledged
		// without touching either row or re-emitting events.
		return &dto.VerifyPaymentResponse{
			SessionId: session.Id,
			Status:    session.Status,
			Tier:      session.Tier,
		}, nil
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		order.Status = entity.OrderStatusPaid
		if order.Kind == entity.OrderKindUpgrade {
			session.PendingUpgradeTier = order.TargetTier
		} else if constant.TierRank[order.TargetTier] > constant.TierRank[session.Tier] {
			// A stale lower-tier order settling late must never shrink
			// what the session is already entitled to.
			session.Tier = order.TargetTier
			session.Status = constant.SessionStatusPaid
		}
	case "deny", "cancel", "expire", "failure":
		order.Status = entity.OrderStatusFailed
	default:
		// pending and other intermediate states keep the order open
	}
	order.UpdatedAt = time.Now()
	session.UpdatedAt = time.Now()

	if err := uow.PaymentOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if order.Status == entity.OrderStatusPaid {
		s.emitConfirmed(ctx, session, order)
	}

	return &dto.VerifyPaymentResponse{
		SessionId: session.Id,
		Status:    session.Status,
		Tier:      session.Tier,
	}, nil
}

func (s *paymentService) emitConfirmed(ctx context.Context, session *entity.AnalysisSession, order *entity.PaymentOrder) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.TypePaymentConfirmed,
		Data: map[string]interface{}{
			"session_id":  session.Id.String(),
			"order_id":    order.OrderId,
			"kind":        order.Kind,
			"target_tier": order.TargetTier,
			"amount":      order.Amount,
			"occurred_at": time.Now(),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("payment", "failed to publish payment event", map[string]interface{}{
			"order_id": order.OrderId,
			"error":    err.Error(),
		})
	}
}
