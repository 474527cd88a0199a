package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/repository"
	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/utils"
)

// SeedRandomUsers 插入 n 个随机用户，所有用户使用同一个初始密码
func SeedRandomUsers(r *repository.Repository, n int, password string, emailDomain string) []*domain.User {
	users := []*domain.User{}

	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("生成随机用户失败", "error", err)
			continue
		}

		if err := r.CreateUser(user); err != nil {
			// 随机生成的邮箱可能撞车，跳过即可
			slog.Error("插入随机用户失败", "email", user.Email, "error", err)
			continue
		}

		users = append(users, user)
	}

	slog.Info("随机用户插入完成", "count", len(users))
	return users
}

// SeedRandomAssets 为给定的用户们插入 n 个随机资产，并写入对应的新增动态
func SeedRandomAssets(r *repository.Repository, users []*domain.User, n int) {
	if len(users) == 0 {
		slog.Error("没有可用的用户，无法插入资产")
		return
	}

	count := 0
	for i := 0; i < n; i++ {
		owner := users[i%len(users)]
		asset := utils.GenerateRandomAsset(owner)

		if err := r.CreateAssetWithActivity(asset); err != nil {
			slog.Error("插入随机资产失败", "name", asset.Name, "error", err)
			continue
		}
		count++
	}

	slog.Info("随机资产插入完成", "count", count)
}
