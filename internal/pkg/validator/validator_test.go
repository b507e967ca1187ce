package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/pkg/validator"
)

func newValidator() *validator.Validator {
	return validator.NewValidator(config.FileUploadConfig{
		MaxFileSize:   1024,
		MaxUploadSize: 4096,
	})
}

func header(filename string, size int64, contentType string) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func TestValidateImageUpload(t *testing.T) {
	v := newValidator()

	cases := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{"jpg is accepted", header("tongue.jpg", 512, "image/jpeg"), nil},
		{"png is accepted", header("nail.png", 512, "image/png"), nil},
		{"uppercase extension is accepted", header("TONGUE.JPEG", 512, "image/jpeg"), nil},
		{"octet-stream is accepted", header("tongue.jpg", 512, "application/octet-stream"), nil},
		{"empty content type is accepted", header("tongue.jpg", 512, ""), nil},
		{"missing file", nil, entity.ErrMissingField},
		{"gif is rejected", header("anim.gif", 512, "image/gif"), entity.ErrInvalidExtension},
		{"no extension is rejected", header("tongue", 512, "image/jpeg"), entity.ErrInvalidExtension},
		{"oversized file", header("tongue.jpg", 2048, "image/jpeg"), entity.ErrFileTooLarge},
		{"text file posing as jpg", header("notes.jpg", 512, "text/plain"), entity.ErrNotAnImage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateImageUpload(tc.file)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestMaxUploadSize(t *testing.T) {
	assert.Equal(t, int64(4096), newValidator().MaxUploadSize())
}

func TestValidateChat(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateChat(&entity.ChatRequest{Message: "apa itu diabetes"}))
	assert.ErrorIs(t, v.ValidateChat(&entity.ChatRequest{Message: ""}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateChat(&entity.ChatRequest{Message: "   "}), entity.ErrMissingField)
}

func validNonDiabetic() *entity.NonDiabeticQuestionnaire {
	return &entity.NonDiabeticQuestionnaire{
		BeratBadan:        70,
		TinggiBadan:       170,
		FrekuensiOlahraga: 2,
		PolaMakan:         1,
	}
}

func TestValidateNonDiabetic(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateNonDiabetic(validNonDiabetic()))

	q := validNonDiabetic()
	q.BeratBadan = 10
	assert.ErrorIs(t, v.ValidateNonDiabetic(q), entity.ErrOutOfRange)

	q = validNonDiabetic()
	q.TinggiBadan = 260
	assert.ErrorIs(t, v.ValidateNonDiabetic(q), entity.ErrOutOfRange)

	q = validNonDiabetic()
	q.FrekuensiOlahraga = 4
	assert.ErrorIs(t, v.ValidateNonDiabetic(q), entity.ErrOutOfRange)

	q = validNonDiabetic()
	q.PolaMakan = 3
	assert.ErrorIs(t, v.ValidateNonDiabetic(q), entity.ErrOutOfRange)
}

func validDiabetic() *entity.DiabeticQuestionnaire {
	return &entity.DiabeticQuestionnaire{
		GulaDarahPuasa:       120,
		TekananDarahSistolik: 120,
		PolaMakan:            1,
	}
}

func TestValidateDiabetic(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateDiabetic(validDiabetic()))

	q := validDiabetic()
	q.GulaDarahPuasa = 600
	assert.ErrorIs(t, v.ValidateDiabetic(q), entity.ErrOutOfRange)

	q = validDiabetic()
	hba1c := 20.0
	q.HasilHbA1c = &hba1c
	assert.ErrorIs(t, v.ValidateDiabetic(q), entity.ErrOutOfRange)

	q = validDiabetic()
	q.TekananDarahSistolik = 60
	assert.ErrorIs(t, v.ValidateDiabetic(q), entity.ErrOutOfRange)

	q = validDiabetic()
	q.PerubahanBerat = 5
	assert.ErrorIs(t, v.ValidateDiabetic(q), entity.ErrOutOfRange)
}

func TestValidateCombined(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateCombined(&entity.CombinedRequest{
		Questionnaire: []byte(`{}`),
	}))

	assert.ErrorIs(t, v.ValidateCombined(&entity.CombinedRequest{}), entity.ErrMissingField)

	tooHigh := 1.5
	assert.ErrorIs(t, v.ValidateCombined(&entity.CombinedRequest{
		ImageScore:    &tooHigh,
		Questionnaire: []byte(`{}`),
	}), entity.ErrOutOfRange)

	negative := -0.1
	assert.ErrorIs(t, v.ValidateCombined(&entity.CombinedRequest{
		ImageScore:    &negative,
		Questionnaire: []byte(`{}`),
	}), entity.ErrOutOfRange)
}
