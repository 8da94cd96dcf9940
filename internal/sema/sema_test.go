package sema

import (
	"testing"

	"aud/internal/ast"
	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/lexer"
	"aud/internal/parser"
	"aud/internal/source"
)

func checkSrc(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	r := source.New(src)
	bag := diag.NewBag()
	lx := lexer.New(r, config.Default(), bag)
	p := parser.New(lx, bag)
	prog := p.Parse()
	if !p.Valid() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	Check(prog, Options{Reporter: bag})
	return prog, bag
}

func TestSemaValidProgram(t *testing.T) {
	_, bag := checkSrc(t, `
func int add(int a, int b) {
    return a + b;
}
int x = add(1, 2);
print(itos(x));
`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaUndeclaredVariable(t *testing.T) {
	_, bag := checkSrc(t, `int x = y;`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UndeclaredVariableStatic {
		t.Fatalf("expected UndeclaredVariable, got %+v", bag.Items())
	}
}

func TestSemaSameFrameRedeclaration(t *testing.T) {
	_, bag := checkSrc(t, `int x = 1; int x = 2;`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UndeclaredVariableStatic {
		t.Fatalf("expected redeclaration to report UndeclaredVariable, got %+v", bag.Items())
	}
}

func TestSemaShadowingInNestedBlockAllowed(t *testing.T) {
	_, bag := checkSrc(t, `
int x = 1;
if (true) {
    int x = 2;
}
`)
	if !bag.Empty() {
		t.Fatalf("expected shadowing to be allowed, got %+v", bag.Items())
	}
}

func TestSemaFunctionRedeclaration(t *testing.T) {
	_, bag := checkSrc(t, `
func int f() { return 1; }
func int f() { return 2; }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.FunctionRedeclaration {
		t.Fatalf("expected FunctionRedeclaration, got %+v", bag.Items())
	}
}

func TestSemaGlobalNotVisibleInsideFunctionBody(t *testing.T) {
	_, bag := checkSrc(t, `
int g = 1;
func int f() { return g; }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UndeclaredVariableStatic {
		t.Fatalf("expected UndeclaredVariable for captured global, got %+v", bag.Items())
	}
}

func TestSemaArithmeticTypeMismatch(t *testing.T) {
	_, bag := checkSrc(t, `int x = 1 + "a";`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidType {
		t.Fatalf("expected InvalidType, got %+v", bag.Items())
	}
}

func TestSemaStringConcatAllowed(t *testing.T) {
	_, bag := checkSrc(t, `string s = "a" + "b";`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaInvalidConditionType(t *testing.T) {
	_, bag := checkSrc(t, `if (1) { print("x"); }`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidConditionStatic {
		t.Fatalf("expected InvalidCondition, got %+v", bag.Items())
	}
}

func TestSemaCallArityMismatch(t *testing.T) {
	_, bag := checkSrc(t, `
func int f(int a) { return a; }
int x = f(1, 2);
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidArgumentType {
		t.Fatalf("expected InvalidArgumentType, got %+v", bag.Items())
	}
}

func TestSemaNullAssignableToComposite(t *testing.T) {
	_, bag := checkSrc(t, `File f = null;`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaNullNotAssignableToSimpleType(t *testing.T) {
	_, bag := checkSrc(t, `int x = null;`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidType {
		t.Fatalf("expected InvalidType, got %+v", bag.Items())
	}
}

func TestSemaEqualityRestrictedToMatchingTypes(t *testing.T) {
	_, bag := checkSrc(t, `bool r = true == false;`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidType {
		t.Fatalf("expected InvalidType (bool not in the equality-eligible set), got %+v", bag.Items())
	}
}

func TestSemaFolderMethodResolution(t *testing.T) {
	_, bag := checkSrc(t, `
Folder f = Folder("root");
File g = f.get_file("a.txt");
`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaUnknownMethodIsInvalidType(t *testing.T) {
	_, bag := checkSrc(t, `
Folder f = Folder("root");
f.nonexistent();
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidType {
		t.Fatalf("expected InvalidType, got %+v", bag.Items())
	}
}

func TestSemaAudioInheritsFileMethods(t *testing.T) {
	_, bag := checkSrc(t, `
Folder f = Folder("root");
Audio a = Audio("song.mp3");
a.move(f);
a.change_filename("renamed.mp3");
a.delete();
`)
	if !bag.Empty() {
		t.Fatalf("expected Audio to accept File's move/change_filename/delete, got %+v", bag.Items())
	}
}

func TestSemaAttributeReadIsAccepted(t *testing.T) {
	_, bag := checkSrc(t, `
Folder f = Folder("root");
bool r = f.is_root;
`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaListLiteralTypeFromContext(t *testing.T) {
	_, bag := checkSrc(t, `List<int> xs = [];`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaEmptyListInfersFromCallArgumentContext(t *testing.T) {
	_, bag := checkSrc(t, `
func void f(List<int> xs) { return; }
f([]);
`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics (context fixes element type via param), got %+v", bag.Items())
	}
}

func TestSemaListMethods(t *testing.T) {
	_, bag := checkSrc(t, `
List<int> xs = [1, 2, 3];
int n = xs.len();
int first = xs.get(0);
xs.set(0, 9);
`)
	if !bag.Empty() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
}

func TestSemaListElementTypeMismatch(t *testing.T) {
	_, bag := checkSrc(t, `List<int> xs = [1, "two"];`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.InvalidType {
		t.Fatalf("expected InvalidType, got %+v", bag.Items())
	}
}
