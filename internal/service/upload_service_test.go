package service

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/dto"
	"careeriq-be/pkg/docparse"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func docxUpload(t *testing.T, paragraphs ...string) *UploadedFile {
	t.Helper()
	body := ""
	for _, p := range paragraphs {
		body += "<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>"
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	assert.NoError(t, err)
	_, err = f.Write([]byte(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	return &UploadedFile{Data: buf.Bytes(), Format: "docx"}
}

func TestUploadCreatesSession(t *testing.T) {
	uow := newFakeUow()
	svc := NewUploadService(uow, nopLogger{})

	res, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Email:        "candidate@example.com",
		MobileNumber: "08123456789",
		TargetRole:   "VP Product",
	}, docxUpload(t, "Led product teams.", "Shipped three launches."), nil)
	assert.NoError(t, err)
	assert.False(t, res.LinkedinProvided)

	stored := uow.sessions[res.SessionId]
	assert.Equal(t, constant.SessionStatusCreated, stored.Status)
	assert.Equal(t, 0, stored.CurrentStep)
	assert.Contains(t, stored.ResumeText, "Led product teams.")
	assert.Contains(t, stored.ResumeText, "Shipped three launches.")
	assert.Empty(t, stored.LinkedinText)
}

func TestUploadWithLinkedinExport(t *testing.T) {
	uow := newFakeUow()
	svc := NewUploadService(uow, nopLogger{})

	res, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Email:        "candidate@example.com",
		MobileNumber: "08123456789",
		TargetRole:   "CTO",
	}, docxUpload(t, "Resume body."), docxUpload(t, "LinkedIn headline."))
	assert.NoError(t, err)
	assert.True(t, res.LinkedinProvided)
	assert.Contains(t, uow.sessions[res.SessionId].LinkedinText, "LinkedIn headline.")
}

func TestUploadRejectsUnsupportedFormat(t *testing.T) {
	svc := NewUploadService(newFakeUow(), nopLogger{})

	_, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Email:      "candidate@example.com",
		TargetRole: "CTO",
	}, &UploadedFile{Data: []byte("plain text"), Format: "txt"}, nil)
	assert.ErrorIs(t, err, docparse.ErrUnsupportedFormat)

	_, err = svc.Upload(context.Background(), &dto.UploadRequest{
		Email:      "candidate@example.com",
		TargetRole: "CTO",
	}, nil, nil)
	assert.Error(t, err)
}

func TestGetSession(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierRisk)
	session.PendingUpgradeTier = constant.TierFullStack
	uow.sessions[session.Id] = session
	svc := NewUploadService(uow, nopLogger{})

	res, err := svc.GetSession(context.Background(), session.Id)
	assert.NoError(t, err)
	assert.Equal(t, constant.SessionStatusPaid, res.Status)
	assert.Equal(t, constant.TierRisk, res.Tier)
	assert.Equal(t, constant.TierFullStack, res.PendingUpgradeTier)

	_, err = svc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
