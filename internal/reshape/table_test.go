package reshape

import (
	"errors"
	"strings"
	"testing"
)

func TestRead_HeaderNotRowZero(t *testing.T) {
	csv := "自殺の状況,,,\n" +
		"(注)警察庁統計による,,,\n" +
		"年,20～29歳,30～39歳,不詳\n" +
		"R4,2483,2545,12\n" +
		"R5,2403,2490,8\n"

	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Header) != 4 || tbl.Header[1] != "20～29歳" {
		t.Errorf("unexpected header: %v", tbl.Header)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(tbl.Rows))
	}
}

func TestRead_BOMPrefixed(t *testing.T) {
	csv := "\ufeff年,～19歳,総数\nH30,599,20840\n"

	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Header[0] != "年" {
		t.Errorf("BOM not stripped, first header = %q", tbl.Header[0])
	}
}

func TestRead_NoHeader(t *testing.T) {
	csv := "a,b,c\n1,2,3\n"

	_, err := Read(strings.NewReader(csv), LoadOptions{})
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
}

func TestRead_HeaderBeyondScanLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("note,,\n")
	}
	b.WriteString("年,20～29歳,30～39歳\nR4,1,2\n")

	if _, err := Read(strings.NewReader(b.String()), LoadOptions{HeaderScanRows: 3}); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader with scan limit 3, got %v", err)
	}

	tbl, err := Read(strings.NewReader(b.String()), LoadOptions{HeaderScanRows: 10})
	if err != nil {
		t.Fatalf("Read with scan limit 10: %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("expected 1 data row, got %d", len(tbl.Rows))
	}
}

func TestRead_RaggedRowsTolerated(t *testing.T) {
	csv := "年,20～29歳,30～39歳\nR4,2483\nR5,2403,2490,extra\n"

	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(tbl.Rows))
	}
}

func TestRead_Empty(t *testing.T) {
	if _, err := Read(strings.NewReader(""), LoadOptions{}); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader for empty input, got %v", err)
	}
}
