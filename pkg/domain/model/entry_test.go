package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/marksort/pkg/domain/model"
)

func TestParseEntryName(t *testing.T) {
	tests := []struct {
		name          string
		entry         string
		separator     string
		wantStudentNo string
		wantFileName  string
		wantErr       error
	}{
		{
			name:          "single separator",
			entry:         "Assignment1_c1234567_CoverSheet.pdf",
			wantStudentNo: "1234567",
			wantFileName:  "CoverSheet.pdf",
		},
		{
			name:          "student number repeated after second separator",
			entry:         "HW1_c1002003_c1002003_Main.docx",
			wantStudentNo: "1002003",
			wantFileName:  "1002003_Main.docx",
		},
		{
			name:          "lower case c after underscore is a second separator",
			entry:         "HW1_c1002003_coverSheet.pdf",
			wantStudentNo: "1002003",
			wantFileName:  "overSheet.pdf",
		},
		{
			name:          "LMS attempt name",
			entry:         "Assignment 1_c3220929_attempt_2021-03-01-10-00-00_Report.pdf",
			wantStudentNo: "3220929",
			wantFileName:  "attempt_2021-03-01-10-00-00_Report.pdf",
		},
		{
			name:          "file name keeps nested path",
			entry:         "HW1_c1002003_src/Main.java",
			wantStudentNo: "1002003",
			wantFileName:  "src/Main.java",
		},
		{
			name:          "custom separator",
			entry:         "Lab2_s998877_answers.txt",
			separator:     "_s",
			wantStudentNo: "998877",
			wantFileName:  "answers.txt",
		},
		{
			name:    "separator missing",
			entry:   "README.txt",
			wantErr: model.ErrSeparatorNotFound,
		},
		{
			name:    "student number not terminated",
			entry:   "HW1_c1002003.pdf",
			wantErr: model.ErrStudentNumberNotTerminated,
		},
		{
			name:    "empty student number",
			entry:   "HW1_c_Main.docx",
			wantErr: model.ErrEmptyStudentNumber,
		},
		{
			name:    "nothing after student number",
			entry:   "HW1_c1002003_",
			wantErr: model.ErrEmptyFileName,
		},
		{
			name:    "nothing after second separator",
			entry:   "HW1_c1002003_c",
			wantErr: model.ErrEmptyFileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := model.ParseEntryName(tt.entry, tt.separator)
			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, tt.wantErr))
				gt.Value(t, parsed).Nil()
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, parsed.StudentNumber, tt.wantStudentNo)
			gt.Equal(t, parsed.FileName, tt.wantFileName)
		})
	}
}

func TestParseEntryName_SameStudentSameFolder(t *testing.T) {
	names := []string{
		"HW1_c1002003_Cover.docx",
		"HW1_c1002003_Main.docx",
		"HW1_c2004005_Cover.docx",
	}

	var numbers []string
	for _, name := range names {
		parsed, err := model.ParseEntryName(name, model.DefaultSeparator)
		gt.NoError(t, err)
		numbers = append(numbers, parsed.StudentNumber)
	}

	gt.Equal(t, numbers, []string{"1002003", "1002003", "2004005"})
}
