// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed case with diacritics", in: "Cà Chua", want: "ca chua"},
		{name: "already normalized", in: "ca chua", want: "ca chua"},
		{name: "all tonal a variants", in: "à á ạ ả ã â ầ ấ ậ ẩ ẫ ă ằ ắ ặ ẳ ẵ", want: "a a a a a a a a a a a a a a a a a"},
		{name: "e variants", in: "è é ẹ ẻ ẽ ê ề ế ệ ể ễ", want: "e e e e e e e e e e e"},
		{name: "o variants", in: "ò ó ọ ỏ õ ô ồ ố ộ ổ ỗ ơ ờ ớ ợ ở ỡ", want: "o o o o o o o o o o o o o o o o o"},
		{name: "u variants", in: "ù ú ụ ủ ũ ư ừ ứ ự ử ữ", want: "u u u u u u u u u u u"},
		{name: "y variants", in: "ỳ ý ỵ ỷ ỹ", want: "y y y y y"},
		{name: "d with stroke", in: "Đường", want: "duong"},
		{name: "whitespace trimmed", in: "  thịt heo  ", want: "thit heo"},
		{name: "empty", in: "", want: ""},
		{name: "plain ascii untouched", in: "Salt 500g", want: "salt 500g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	for _, in := range []string{"Cà Chua", "đậu phộng", "NƯỚC MẮM", "", "rau má"} {
		once := Key(in)
		if twice := Key(once); twice != once {
			t.Errorf("Key(Key(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestKeyFoldsDiacriticVariantsEqual(t *testing.T) {
	pairs := [][2]string{
		{"cà chua", "ca chua"},
		{"Thịt Bò", "thit bo"},
		{"đu đủ", "du du"},
		{"nước mắm", "nuoc mam"},
	}
	for _, p := range pairs {
		if Key(p[0]) != Key(p[1]) {
			t.Errorf("Key(%q) = %q, Key(%q) = %q; want equal", p[0], Key(p[0]), p[1], Key(p[1]))
		}
	}
}

func TestDishKeyKeepsDiacritics(t *testing.T) {
	if got := DishKey("  Phở Bò  "); got != "phở bò" {
		t.Errorf("DishKey = %q, want %q", got, "phở bò")
	}
	// The dish key must NOT collapse diacritic-only differences.
	if DishKey("phở bò") == DishKey("pho bo") {
		t.Error("DishKey folded diacritics; dish dedup must keep them")
	}
	// But it does collapse case and surrounding whitespace.
	if DishKey("Canh Chua") != DishKey("canh chua ") {
		t.Error("DishKey should collapse case and whitespace differences")
	}
}
