package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-segmentation/docs"
	"go-segmentation/internal/api/handler"
	"go-segmentation/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/health", h.Health)

	r.POST("/api/v1/uploads", h.UploadFile)
	r.GET("/api/v1/uploads", h.ListUploads)
	r.GET("/api/v1/uploads/*/preview", h.GetUploadPreview)

	r.POST("/api/v1/jobs", h.StartJob)
	r.GET("/api/v1/jobs", h.ListJobs)
	r.GET("/api/v1/jobs/*/status", h.GetJobStatus)
	r.GET("/api/v1/jobs/*/logs", h.GetJobLogs)
	r.POST("/api/v1/jobs/*/retry", h.RetryJob)

	r.GET("/api/v1/segments", h.GetSegments)
	r.GET("/api/v1/results", h.ListResults)
	r.GET("/api/v1/cluster-plot-data", h.GetClusterPlotData)
	r.GET("/api/v1/export/*", h.ExportResults)

	r.POST("/api/v1/cleanup", h.Cleanup)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
