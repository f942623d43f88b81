package seed

import (
	"github.com/shopspring/decimal"

	"github.com/kantanpro/kantanpro/internal/models"
)

var clients = []models.Client{
	{Name: "株式会社サンプル", ContactPerson: "田中太郎", Email: "tanaka@sample.co.jp", Phone: "03-1234-5678", Address: "東京都渋谷区渋谷1-1-1", Department: "営業部"},
	{Name: "サンプル商事", ContactPerson: "佐藤花子", Email: "sato@sample-shouji.co.jp", Phone: "06-1234-5678", Address: "大阪府大阪市北区梅田1-1-1", Department: "企画部"},
	{Name: "サンプル工業", ContactPerson: "鈴木一郎", Email: "suzuki@sample-kougyou.co.jp", Phone: "052-123-4567", Address: "愛知県名古屋市中区栄1-1-1", Department: "開発部"},
	{Name: "サンプル建設", ContactPerson: "高橋次郎", Email: "takahashi@sample-kensetsu.co.jp", Phone: "092-123-4567", Address: "福岡県福岡市博多区博多駅前1-1-1", Department: "施工部"},
	{Name: "サンプルIT", ContactPerson: "渡辺三郎", Email: "watanabe@sample-it.co.jp", Phone: "011-123-4567", Address: "北海道札幌市中央区南1条西1-1-1", Department: "システム部"},
}

var services = []models.Service{
	{Name: "Webサイト制作", Description: "企業向けコーポレートサイトの制作", UnitPrice: decimal.NewFromInt(500000), Unit: "式", TaxRate: models.DefaultTaxRate},
	{Name: "ECサイト構築", Description: "オンラインショップの構築・運営", UnitPrice: decimal.NewFromInt(800000), Unit: "式", TaxRate: models.DefaultTaxRate},
	{Name: "アプリ開発", Description: "iOS・Androidアプリの開発", UnitPrice: decimal.NewFromInt(1200000), Unit: "式", TaxRate: models.DefaultTaxRate},
	{Name: "システム設計", Description: "業務システムの設計・開発", UnitPrice: decimal.NewFromInt(300000), Unit: "式", TaxRate: models.DefaultTaxRate},
	{Name: "保守・運用", Description: "システムの保守・運用サービス", UnitPrice: decimal.NewFromInt(50000), Unit: "月", TaxRate: models.DefaultTaxRate},
}

var suppliers = []models.Supplier{
	{Name: "デザイン工房サンプル", ContactPerson: "山田デザイナー", Email: "yamada@design-sample.co.jp", Phone: "03-2345-6789", Address: "東京都新宿区新宿1-1-1", Skills: "Webデザイン,UI/UX,グラフィックデザイン", QualifiedInvoiceNumber: "T1234567890123"},
	{Name: "プログラミングサンプル", ContactPerson: "伊藤エンジニア", Email: "ito@programming-sample.co.jp", Phone: "03-3456-7890", Address: "東京都品川区品川1-1-1", Skills: "フロントエンド,バックエンド,データベース", QualifiedInvoiceNumber: "T2345678901234"},
	{Name: "マーケティングサンプル", ContactPerson: "中村マーケター", Email: "nakamura@marketing-sample.co.jp", Phone: "03-4567-8901", Address: "東京都港区港1-1-1", Skills: "SEO,SNS,広告運用", QualifiedInvoiceNumber: "T3456789012345"},
}

// sampleOrder refers to the client by its position in clients.
type sampleOrder struct {
	client int
	order  models.Order
}

var orders = []sampleOrder{
	{client: 0, order: models.Order{
		ProjectName: "コーポレートサイトリニューアル",
		Description: "既存サイトのデザイン刷新と機能追加",
		Status:      models.OrderStatusInProgress,
		TotalAmount: decimal.NewFromInt(800000),
		TaxAmount:   decimal.NewFromInt(80000),
		Deadline:    "2024-04-30",
	}},
	{client: 1, order: models.Order{
		ProjectName: "ECサイト構築",
		Description: "新規ECサイトの構築",
		Status:      models.OrderStatusReceived,
		TotalAmount: decimal.NewFromInt(1200000),
		TaxAmount:   decimal.NewFromInt(120000),
		Deadline:    "2024-05-31",
	}},
	{client: 2, order: models.Order{
		ProjectName:    "業務システム開発",
		Description:    "在庫管理システムの開発",
		Status:         models.OrderStatusCompleted,
		TotalAmount:    decimal.NewFromInt(2000000),
		TaxAmount:      decimal.NewFromInt(200000),
		Deadline:       "2024-03-15",
		CompletionDate: "2024-03-10",
	}},
}

// chatMessages are posted on the first sample order.
var chatMessages = []models.ChatMessage{
	{UserName: "田中太郎", Message: "プロジェクトの進捗状況を確認したいのですが、いかがでしょうか？"},
	{UserName: "佐藤花子", Message: "新しい機能の追加について相談があります。"},
	{UserName: "鈴木一郎", Message: "納期について調整が必要です。"},
}
