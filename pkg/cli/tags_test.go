package cli

import (
	"strings"
	"testing"
)

func TestTagsCommand(t *testing.T) {
	catalog := setupCLITest(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "one category sorted",
			args: []string{"tags", "--category", "appliances"},
			want: "Blender\nCasserole\nFour\n",
		},
		{
			name: "singular category name",
			args: []string{"tags", "-c", "appliance", "-q", "sel"},
			want: "Casserole\nFour\n",
		},
		{
			name: "selected tag is not listed",
			args: []string{"tags", "-c", "ingredients", "-i", "sucre"},
			want: "Crème fraîche\nOeuf\nPomme\n",
		},
		{
			name: "filter narrows the list",
			args: []string{"tags", "-c", "utensils", "--filter", "CAS"},
			want: "Casserole\n",
		},
		{
			name: "every category",
			args: []string{"tags", "-q", "soupe"},
			want: "Ingrédients (1)\n  Carotte\n\nUstensiles (1)\n  Louche\n\nAppareils (1)\n  Blender\n",
		},
		{
			name: "yaml list",
			args: []string{"tags", "-c", "appliances", "-o", "yaml"},
			want: "- Blender\n- Casserole\n- Four\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append(tt.args, "--catalog", catalog)...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if stdout != tt.want {
				t.Errorf("%v output = %q, want %q", tt.args, stdout, tt.want)
			}
		})
	}
}

func TestTagsCommandUnknownCategory(t *testing.T) {
	catalog := setupCLITest(t)

	_, _, err := executeCommand(t, "tags", "--catalog", catalog, "-c", "spices")
	if err == nil {
		t.Fatal("tags -c spices should return error")
	}
	if !strings.Contains(err.Error(), `unknown tag category "spices"`) {
		t.Errorf("tags -c spices error = %v", err)
	}
}
