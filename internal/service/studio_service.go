package service

import (
	"context"
	"strings"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/apperror"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/pkg/genai"
)

// IStudioService covers the single-shot flows: analyzing one library item
// and generating images from a bare prompt. Unlike batch edits, a transform
// failure here surfaces directly to the caller.
type IStudioService interface {
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
}

type studioService struct {
	library     ILibraryService
	transformer genai.Transformer
	activity    IActivityService
	logger      logger.ILogger
}

func NewStudioService(
	library ILibraryService,
	transformer genai.Transformer,
	activity IActivityService,
	sysLogger logger.ILogger,
) IStudioService {
	return &studioService{
		library:     library,
		transformer: transformer,
		activity:    activity,
		logger:      sysLogger,
	}
}

func (s *studioService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return nil, apperror.NewValidation("instruction must not be empty")
	}

	item, found := s.library.Item(req.ItemId)
	if !found {
		return nil, apperror.NewValidation("unknown item %s", req.ItemId)
	}

	text, err := s.transformer.Analyze(ctx, instruction, genai.Image{
		MimeType: item.MimeType,
		Data:     item.Payload,
	})
	if err != nil {
		return nil, apperror.NewService("analyze", "transform failed", err)
	}

	record := entity.NewAnalysisRecord(
		instruction,
		[]string{encodeDataURL(item.MimeType, item.Payload)},
		text,
	)
	s.activity.Append(ctx, record)

	return &dto.AnalyzeResponse{
		RecordId:   record.Id,
		ResultText: text,
	}, nil
}

func (s *studioService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return nil, apperror.NewValidation("instruction must not be empty")
	}

	artifacts, err := s.transformer.Generate(ctx, instruction)
	if err != nil {
		return nil, apperror.NewService("generate", "transform failed", err)
	}

	outputs := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		outputs = append(outputs, string(artifact))
	}

	record := entity.NewGenerationRecord(instruction, outputs)
	s.activity.Append(ctx, record)

	return &dto.GenerateResponse{
		RecordId: record.Id,
		Outputs:  outputs,
	}, nil
}
