package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
	"github.com/haneulsoft/weddingmoa-backend/pkg/security"
	"github.com/haneulsoft/weddingmoa-backend/pkg/slug"
	"github.com/haneulsoft/weddingmoa-backend/pkg/types"
)

type seedCategory struct {
	Slug        string
	Name        string
	Icon        string
	Description string
	Tags        []string
}

var seedCategories = []seedCategory{
	{
		Slug: "studio", Name: "스튜디오", Icon: "📸",
		Description: "웨딩 촬영 전문 스튜디오",
		Tags:        []string{"야외촬영", "흑백컨셉", "한옥", "인물중심"},
	},
	{
		Slug: "dress", Name: "드레스", Icon: "👗",
		Description: "웨딩드레스 샵",
		Tags:        []string{"수입드레스", "맞춤제작", "미니멀"},
	},
	{
		Slug: "makeup", Name: "메이크업", Icon: "💄",
		Description: "신부 메이크업",
		Tags:        []string{"내추럴", "혼주메이크업", "출장가능"},
	},
	{
		Slug: "venue", Name: "웨딩홀", Icon: "💒",
		Description: "예식장 및 연회장",
		Tags:        []string{"채플", "호텔", "하우스웨딩", "스몰웨딩"},
	},
	{
		Slug: "car", Name: "웨딩카", Icon: "🚗",
		Description: "웨딩카 대여",
		Tags:        []string{"리무진", "클래식카"},
	},
}

var seedLocations = []string{
	"서울 강남구", "서울 서초구", "서울 마포구", "서울 송파구",
	"경기 성남시 분당구", "부산 해운대구", "대구 수성구", "인천 연수구",
}

var vendorNamePrefixes = []string{
	"더모아", "라포레", "루체", "아벨리아", "청담", "소울", "메종",
	"그레이스", "블랑", "온유", "피오레", "모멘트",
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}
	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := run(ctx, dbClient.DB(), cfg); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "seeding complete")
}

func run(ctx context.Context, gormDB *gorm.DB, cfg *config.Config) error {
	categories, tagsByCategory, err := seedCatalogTaxonomy(ctx, gormDB)
	if err != nil {
		return err
	}
	if err := seedVendors(ctx, gormDB, categories, tagsByCategory); err != nil {
		return err
	}
	return seedUsers(ctx, gormDB, cfg.Password)
}

func seedCatalogTaxonomy(ctx context.Context, gormDB *gorm.DB) ([]models.VendorCategory, map[string][]models.Tag, error) {
	categories := make([]models.VendorCategory, 0, len(seedCategories))
	tagsByCategory := make(map[string][]models.Tag, len(seedCategories))

	for order, sc := range seedCategories {
		description := sc.Description
		icon := sc.Icon
		category := models.VendorCategory{
			Slug:         sc.Slug,
			Name:         sc.Name,
			Description:  &description,
			Icon:         &icon,
			DisplayOrder: order + 1,
			IsActive:     true,
		}
		err := gormDB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				UpdateAll: true,
			}).
			Create(&category).Error
		if err != nil {
			return nil, nil, fmt.Errorf("seeding category %s: %w", sc.Slug, err)
		}
		categories = append(categories, category)

		for _, tagName := range sc.Tags {
			tag := models.Tag{
				CategoryID: category.ID,
				Name:       tagName,
				Slug:       slug.Generate(tagName, time.Now()),
			}
			if err := gormDB.WithContext(ctx).Create(&tag).Error; err != nil {
				return nil, nil, fmt.Errorf("seeding tag %s: %w", tagName, err)
			}
			tagsByCategory[sc.Slug] = append(tagsByCategory[sc.Slug], tag)
		}
	}

	return categories, tagsByCategory, nil
}

func seedVendors(ctx context.Context, gormDB *gorm.DB, categories []models.VendorCategory, tagsByCategory map[string][]models.Tag) error {
	rng := rand.New(rand.NewSource(20260830))

	for i := 0; i < 20; i++ {
		category := categories[i%len(categories)]
		name := fmt.Sprintf("%s %s", vendorNamePrefixes[i%len(vendorNamePrefixes)], category.Name)

		priceMin := (rng.Intn(20) + 5) * 100_000
		priceMax := priceMin + (rng.Intn(30)+10)*100_000
		priceRange := fmt.Sprintf("%d만원~%d만원", priceMin/10_000, priceMax/10_000)
		description := fmt.Sprintf("%s 전문 업체입니다.", category.Name)
		phone := fmt.Sprintf("02-%04d-%04d", rng.Intn(10_000), rng.Intn(10_000))

		var tags types.TagRefs
		for _, tag := range tagsByCategory[category.Slug] {
			if rng.Intn(2) == 0 {
				tags = append(tags, tag.Ref())
			}
		}

		vendor := models.Vendor{
			CategoryID:  category.ID,
			Name:        name,
			Slug:        slug.Generate(name, time.Now()),
			Description: &description,
			Phone:       &phone,
			Location:    seedLocations[rng.Intn(len(seedLocations))],
			PriceRange:  &priceRange,
			PriceMin:    &priceMin,
			PriceMax:    &priceMax,
			Tags:        tags,
			Images: types.Images{
				{
					URL:          fmt.Sprintf("https://cdn.weddingmoa.kr/seed/vendor-%02d-thumb.jpg", i+1),
					Type:         enums.ImageTypeThumbnail,
					DisplayOrder: 0,
					AltText:      name,
				},
				{
					URL:          fmt.Sprintf("https://cdn.weddingmoa.kr/seed/vendor-%02d-01.jpg", i+1),
					Type:         enums.ImageTypePortfolio,
					DisplayOrder: 1,
					AltText:      name + " 포트폴리오",
				},
			},
			Rating:      float64(rng.Intn(21)+30) / 10, // 3.0 .. 5.0
			ReviewCount: rng.Intn(200),
			ViewCount:   rng.Intn(5000),
			IsVerified:  rng.Intn(3) > 0,
			IsActive:    true,
			IsPremium:   i%7 == 0,
		}
		if err := gormDB.WithContext(ctx).Create(&vendor).Error; err != nil {
			return fmt.Errorf("seeding vendor %s: %w", name, err)
		}
	}

	return nil
}

func seedUsers(ctx context.Context, gormDB *gorm.DB, passwordCfg config.PasswordConfig) error {
	demo := []struct {
		Email string
		Name  string
		Role  enums.UserRole
	}{
		{"admin@weddingmoa.kr", "운영자", enums.UserRoleAdmin},
		{"customer@weddingmoa.kr", "김예비", enums.UserRoleCustomer},
		{"vendor@weddingmoa.kr", "박사장", enums.UserRoleVendor},
	}

	for _, d := range demo {
		hash, err := security.HashPassword("changeme123!", passwordCfg)
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}
		user := models.User{
			Email:         d.Email,
			Name:          d.Name,
			PasswordHash:  hash,
			Role:          d.Role,
			EmailVerified: true,
			IsActive:      true,
		}
		err = gormDB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).
			Create(&user).Error
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", d.Email, err)
		}
	}

	return nil
}
