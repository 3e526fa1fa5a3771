package generator

// 外部リンク候補として提示する権威性の高い健康・栄養系サイトの一覧です。
// レシピサイトや料理ブログは含めません。
var englishHealthSites = []string{
	"Healthline: https://www.healthline.com",
	"Medical News Today: https://www.medicalnewstoday.com",
	"Harvard T.H. Chan School of Public Health: https://www.hsph.harvard.edu/nutritionsource/",
	"Mayo Clinic: https://www.mayoclinic.org",
	"WebMD: https://www.webmd.com",
	"EatRight: https://www.eatright.org",
	"NIH: https://www.nih.gov",
	"USDA FoodData Central: https://fdc.nal.usda.gov",
	"Cleveland Clinic: https://health.clevelandclinic.org",
	"Verywell Fit: https://www.verywellfit.com",
}

var frenchHealthSites = []string{
	"Manger Bouger (PNNS): https://www.mangerbouger.fr",
	"Ameli (Assurance Maladie): https://www.ameli.fr",
	"Vidal (Reference Medicale): https://www.vidal.fr",
	"Doctissimo (Sante): https://www.doctissimo.fr/sante",
	"PasseportSanté: https://www.passeportsante.net",
	"Inserm: https://www.inserm.fr",
	"ANSES: https://www.anses.fr",
	"Ministère de la Santé: https://sante.gouv.fr",
	"AlloDocteurs: https://www.allodocteurs.fr",
}

const (
	englishExampleLink = "https://www.healthline.com/nutrition/benefits-of-olive-oil"
	frenchExampleLink  = "https://www.mangerbouger.fr/manger-mieux"
)

// healthSitesFor は地域・言語に応じたサイト一覧と例示リンクを返します。
func healthSitesFor(region, language string) (sites []string, exampleLink string) {
	if region == "France" && language == "French" {
		return frenchHealthSites, frenchExampleLink
	}
	return englishHealthSites, englishExampleLink
}
