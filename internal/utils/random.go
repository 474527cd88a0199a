package utils

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleManager,
	domain.RoleUser,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// GenerateUsernameFromChineseName 将中文姓名转成拼音缩写并附上随机数字，用作邮箱前缀和员工编号
func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	username := GenerateUsernameFromChineseName(GenerateRandomChineseName())
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        username + "@" + emailDomainName,
		PasswordHash: string(passwordHash),
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var assetNamePrefixes = []string{
	"ThinkPad", "MacBook", "Dell 显示器", "办公桌", "人体工学椅",
	"打印机", "投影仪", "交换机", "公务车", "电钻", "Office 授权", "CAD 授权",
}

// GenerateRandomAsset 在固定的选项集内随机生成一个资产，owner 为资产归属的用户
func GenerateRandomAsset(owner *domain.User) *domain.Asset {
	employeeName := GenerateRandomChineseName()

	return &domain.Asset{
		Name:         fmt.Sprintf("%s-%03d", assetNamePrefixes[rand.Intn(len(assetNamePrefixes))], rand.Intn(1000)),
		Category:     domain.AssetCategories[rand.Intn(len(domain.AssetCategories))],
		Status:       domain.AssetStatuses[rand.Intn(len(domain.AssetStatuses))],
		Location:     domain.AssetLocations[rand.Intn(len(domain.AssetLocations))],
		Value:        float64(rand.Intn(100000)) / 10,
		UserID:       owner.ID,
		EmployeeName: employeeName,
		EmployeeID:   fmt.Sprintf("EMP%04d", rand.Intn(10000)),
	}
}
