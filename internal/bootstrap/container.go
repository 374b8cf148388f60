package bootstrap

import (
	"log"
	"time"

	"careeriq-be/internal/config"
	"careeriq-be/internal/constant"
	"careeriq-be/internal/controller"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/pkg/mailer"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/internal/service"
	"careeriq-be/pkg/intel"
	"careeriq-be/pkg/llm/openai"
	pktNats "careeriq-be/pkg/nats"
	"careeriq-be/pkg/pdfrender"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	PaymentController controller.IPaymentController
	ReportController  controller.IReportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is best effort. Analysis keeps working when the bus is down.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Intelligence stack
	llmProvider := openai.NewProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIKey,
		cfg.Ai.Model,
		time.Duration(cfg.Ai.CallTimeoutSec)*time.Second,
	)
	log.Printf("[INFO] Using LLM model: %s", cfg.Ai.Model)

	callLog := service.NewCallLogSink(uowFactory, sysLogger)
	gateway := intel.NewGateway(llmProvider, callLog, time.Duration(cfg.Ai.CallTimeoutSec)*time.Second)
	auditor := intel.NewQualityAuditor(gateway, constant.QualityAuditorPrompt, constant.PromptVersions[constant.CallQualityAudit])
	generator := intel.NewGenerator(gateway, auditor, intel.DefaultMaxRetries)

	renderer := pdfrender.NewChromedpRenderer(cfg.Ai.ChromePath, 60*time.Second)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.AnalysisTopic, pubSub)

	uploadService := service.NewUploadService(uowFactory, sysLogger)
	paymentService := service.NewPaymentService(
		uowFactory,
		natsPub,
		sysLogger,
		cfg.Payment.MidtransServerKey,
		cfg.Payment.MidtransProd,
	)
	analysisService := service.NewAnalysisService(
		uowFactory,
		gateway,
		generator,
		publisherService,
		natsPub,
		sysLogger,
		time.Duration(cfg.Ai.PipelineTimeoutMin)*time.Minute,
	)
	reportService := service.NewReportService(
		uowFactory,
		renderer,
		emailService,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AnalysisTopic,
		analysisService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(uploadService),
		PaymentController: controller.NewPaymentController(paymentService),
		ReportController:  controller.NewReportController(analysisService, reportService),

		ConsumerService: consumerService,
	}
}
