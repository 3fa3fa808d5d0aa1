package jwt

import (
	"context"
	"crypto/rsa"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	privateKeyPath = "jwt/private_key.pem"
	publicKeyPath  = "jwt/public_key.pem"
)

// Redis中登入Token白名單的Key前綴
const loginTokenPrefix = "login_token:"

// 讀取私鑰
func loadPrivateKey() (*rsa.PrivateKey, error) {
	keyBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	return key, nil
}

// 讀取公鑰
func loadPublicKey() (*rsa.PublicKey, error) {
	keyBytes, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	return key, nil
}

// 生成JWT Token並寫入Redis白名單，到期自動失效
func GenerateToken(ctx context.Context, userID uint, expirationTime time.Time, rdb *redis.Client) (string, error) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		return "", err
	}

	token := jwt.New(jwt.SigningMethodRS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = userID
	claims["exp"] = expirationTime.Unix()

	tokenString, err := token.SignedString(privateKey)
	if err != nil {
		return "", err
	}

	err = rdb.Set(ctx, loginTokenPrefix+tokenString, userID, time.Until(expirationTime)).Err()
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// 驗證JWT Token並回傳UserID
func VerifyToken(ctx context.Context, tokenString *string, rdb *redis.Client) (uint, error) {
	publicKey, err := loadPublicKey()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(*tokenString, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	//從Redis檢查Token是否已登出或過期
	err = rdb.Get(ctx, loginTokenPrefix+*tokenString).Err()
	if err != nil {
		return 0, err
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := uint(claims["userID"].(float64))

	return userID, nil
}

// 從Redis白名單撤銷Token，回傳刪除的數量
func RevokeToken(ctx context.Context, tokenString string, rdb *redis.Client) (int64, error) {
	deleted, err := rdb.Del(ctx, loginTokenPrefix+tokenString).Result()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
