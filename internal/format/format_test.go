package format_test

import (
	"testing"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/format"
)

func TestFormatIndentsNestedBlocks(t *testing.T) {
	src := `Module main()
Declare Integer x = 1
If x > 0 Then
Display "positive"
End If
End Module`
	want := `Module main()
   Declare Integer x = 1
   If x > 0 Then
      Display "positive"
   End If
End Module`
	if got := format.Format(src); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := `Module main()
Declare Integer x = 1
While x < 10
Set x = x + 1
End While
End Module`
	once := format.Format(src)
	twice := format.Format(once)
	if once != twice {
		t.Fatalf("format is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestFormatPreservesBlankLines(t *testing.T) {
	src := "Module main()\n\nDisplay 1\nEnd Module"
	got := format.Format(src)
	lines := []rune(got)
	_ = lines
	want := "Module main()\n\n   Display 1\nEnd Module"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatElseDoesNotDoubleIndent(t *testing.T) {
	src := `If x Then
Display 1
Else
Display 2
End If`
	want := `If x Then
   Display 1
Else
   Display 2
End If`
	if got := format.Format(src); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
