// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultCategory is assigned when neither the oracle response nor the
// keyword fallback produces a label. Defaulting to seasoning avoids an
// "uncategorized" state in the output.
const DefaultCategory = "gia-vi"

// CategoryLabel is one closed-set label with the free-text description shown
// to the oracle in the classification prompt.
type CategoryLabel struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// CategorySet is an ordered, closed enumeration of category labels.
type CategorySet struct {
	Name   string
	Labels []CategoryLabel
}

// BaseCategories is the five-label set the dish knowledge base was
// originally built against.
var BaseCategories = CategorySet{
	Name: "base",
	Labels: []CategoryLabel{
		{Code: "rau-thom", Description: "rau thơm như húng, ngò, rau mùi, thì là, lá"},
		{Code: "gia-vi", Description: "gia vị như muối, đường, bột, nước mắm, tương, hạt nêm, tiêu, ớt, tỏi, gừng, hành"},
		{Code: "thit-ca", Description: "thịt và hải sản như thịt gà, heo, bò, cá, tôm, mực, sườn"},
		{Code: "rau-cu", Description: "rau củ như cà chua, bí, củ cải, khoai, su hào, đậu, bắp, măng"},
		{Code: "ngu-coc", Description: "ngũ cốc như gạo, bột mì, nui, miến, bún, phở, bánh"},
	},
}

// ExtendedCategories is the twelve-label set of the second knowledge-base
// variant.
var ExtendedCategories = CategorySet{
	Name: "extended",
	Labels: []CategoryLabel{
		{Code: "rau-thom", Description: "rau thơm như húng, ngò, rau mùi, thì là, lá"},
		{Code: "rau-cu", Description: "rau củ như cà chua, bí, củ cải, khoai, su hào, đậu, bắp, măng"},
		{Code: "trai-cay", Description: "trái cây như chuối, táo, cam, xoài, dứa, đu đủ, bưởi, nho"},
		{Code: "thit-ca", Description: "thịt và hải sản như thịt gà, heo, bò, cá, tôm, mực, sườn, tép, ghẹ"},
		{Code: "gia-vi", Description: "gia vị như muối, đường, bột, nước mắm, tương, hạt nêm, tiêu, ớt, tỏi, gừng, hành, me, sả"},
		{Code: "ngu-coc", Description: "ngũ cốc như gạo, bột mì, nui, miến, bún, phở, bánh mì, yến mạch"},
		{Code: "hat-dau", Description: "các loại hạt và đậu như đậu phộng, đậu nành, đậu đỏ, đậu xanh, hạt điều, óc chó"},
		{Code: "sua-trung", Description: "sữa, trứng và sản phẩm từ sữa như sữa tươi, sữa đặc, phô mai, bơ, trứng gà, trứng vịt"},
		{Code: "do-kho", Description: "đồ khô như nấm, mộc nhĩ, hải sâm, tôm khô, mực khô, cá khô"},
		{Code: "nuoc-cham", Description: "nước chấm và sốt như nước mắm pha, tương ớt, mayonnaise, sốt cà chua"},
		{Code: "dau-mo", Description: "dầu và mỡ như dầu ăn, dầu olive, mỡ heo, bơ thực vật"},
		{Code: "khac", Description: "các loại khác"},
	},
}

// CategorySetByName resolves "base" or "extended"; any other value is taken
// as the path of a YAML label table.
func CategorySetByName(name string) (CategorySet, error) {
	switch name {
	case "", BaseCategories.Name:
		return BaseCategories, nil
	case ExtendedCategories.Name:
		return ExtendedCategories, nil
	default:
		return LoadCategorySet(name)
	}
}

// LoadCategorySet reads a category label table from a YAML file: a list of
// {code, description} entries, in priority order.
func LoadCategorySet(path string) (CategorySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CategorySet{}, fmt.Errorf("reading category table %s: %w", path, err)
	}
	var labels []CategoryLabel
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return CategorySet{}, fmt.Errorf("parsing category table %s: %w", path, err)
	}
	if len(labels) == 0 {
		return CategorySet{}, fmt.Errorf("category table %s defines no labels", path)
	}
	for i, l := range labels {
		if strings.TrimSpace(l.Code) == "" {
			return CategorySet{}, fmt.Errorf("category table %s: entry %d has an empty code", path, i+1)
		}
	}
	return CategorySet{Name: path, Labels: labels}, nil
}

// Decode maps a raw oracle response to a label in the set. It scans for any
// label code appearing as a substring of the lower-cased response, then falls
// back to keyword matching on the ingredient name, and finally to
// DefaultCategory.
func (s CategorySet) Decode(response, name string) string {
	resp := strings.ToLower(response)
	for _, l := range s.Labels {
		if strings.Contains(resp, l.Code) {
			return l.Code
		}
	}
	return fallbackCategory(name)
}

// fallbackKeywords pairs each category with the Vietnamese keywords that
// select it. The name is scanned lower-cased but not diacritic-folded, and
// order matters: the first matching set wins.
var fallbackKeywords = []struct {
	code     string
	keywords []string
}{
	{"rau-thom", []string{"húng", "ngò", "rau", "lá", "mùi", "thì"}},
	{"gia-vi", []string{"muối", "đường", "bột", "tương", "ớt", "tỏi", "gừng", "hành"}},
	{"thit-ca", []string{"thịt", "gà", "heo", "bò", "cá", "tôm", "mực"}},
	{"rau-cu", []string{"cà", "bí", "củ", "khoai", "cải", "đậu", "bắp"}},
	{"ngu-coc", []string{"gạo", "bột", "mì", "nui", "miến", "bún", "phở"}},
}

func fallbackCategory(name string) string {
	lower := strings.ToLower(name)
	for _, fk := range fallbackKeywords {
		for _, kw := range fk.keywords {
			if strings.Contains(lower, kw) {
				return fk.code
			}
		}
	}
	return DefaultCategory
}
